package dto

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión del operador.
type LoginResponse struct {
	Token    string `json:"token"`
	Operator string `json:"operator"`
}
