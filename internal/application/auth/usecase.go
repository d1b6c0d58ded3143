package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pos-backoffice/internal/application/dto"
	"github.com/tu-usuario/pos-backoffice/internal/application/shop"
	"github.com/tu-usuario/pos-backoffice/internal/domain"
	"github.com/tu-usuario/pos-backoffice/pkg/jwt"
)

// Config credenciales del operador y parámetros del token.
// No hay gestión de cuentas: un solo operador por despliegue, definido por configuración.
type Config struct {
	OperatorEmail string
	PasswordHash  string // bcrypt
	JWTSecret     string
	JWTExpMinutes int
	JWTIssuer     string
}

// UseCase login del operador: verifica credenciales contra la configuración, abre una
// sesión de caja nueva (carrito vacío) y emite el JWT que la identifica.
type UseCase struct {
	cfg      Config
	sessions *shop.Sessions
}

// NewUseCase construye el caso de uso.
func NewUseCase(cfg Config, sessions *shop.Sessions) *UseCase {
	return &UseCase{cfg: cfg, sessions: sessions}
}

// Login verifica email y contraseña. En éxito crea la sesión de caja y devuelve el token.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.EqualFold(email, uc.cfg.OperatorEmail) {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	sessionID, _ := uc.sessions.Create()
	token, err := jwt.Generate(uc.cfg.JWTSecret, email, sessionID, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Operator: email}, nil
}

// Logout descarta la sesión de caja del token. Idempotente.
func (uc *UseCase) Logout(sessionID string) {
	uc.sessions.Remove(sessionID)
}
