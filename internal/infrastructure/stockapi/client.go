// Package stockapi implementa el Stock Source contra el backend REST remoto.
//
// Contrato del backend:
//
//	GET  {base}/api/products          -> 200 {"data":{"items":[{"code","name","price","remain"}]}}
//	POST {base}/api/products/checkout -> 200 en éxito
//	                                     4xx/5xx {"message":"..."} en rechazo
//
// El mensaje de rechazo se propaga textual al operador; si el cuerpo no trae
// mensaje, CheckoutError usa su texto genérico.
package stockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-backoffice/internal/application/shop"
	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

var _ shop.StockSource = (*Client)(nil)

// Client adaptador HTTP del Stock Source.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente con timeout propio: las llamadas al backend no
// soportan reintento ni cancelación fina, el timeout evita una UI colgada para siempre.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type productPayload struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Remain int             `json:"remain"`
}

type productsResponse struct {
	Data struct {
		Items []productPayload `json:"items"`
	} `json:"data"`
}

type checkoutRequest struct {
	Items []shop.CheckoutItem `json:"items"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// FetchProducts obtiene el catálogo completo del backend. Cualquier falla de
// transporte o estado no exitoso sube como FetchError.
func (c *Client) FetchProducts(ctx context.Context) (entity.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, &shop.FetchError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &shop.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &shop.FetchError{Err: fmt.Errorf("estado HTTP %d", resp.StatusCode)}
	}

	var body productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &shop.FetchError{Err: fmt.Errorf("decodificar respuesta: %w", err)}
	}

	catalog := make(entity.Catalog, 0, len(body.Data.Items))
	for _, p := range body.Data.Items {
		catalog = append(catalog, entity.Product{
			Code:   p.Code,
			Name:   p.Name,
			Price:  p.Price,
			Remain: p.Remain,
		})
	}
	return catalog, nil
}

// SubmitCheckout envía el carrito serializado como {"items":[{code, amount}]}.
// Un estado no exitoso se traduce a CheckoutError con el mensaje del servidor.
func (c *Client) SubmitCheckout(ctx context.Context, items []shop.CheckoutItem) error {
	payload, err := json.Marshal(checkoutRequest{Items: items})
	if err != nil {
		return fmt.Errorf("serializar checkout: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/products/checkout", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("enviar checkout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	var errBody errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&errBody) // cuerpo vacío o no-JSON: mensaje genérico
	return &shop.CheckoutError{Message: errBody.Message}
}
