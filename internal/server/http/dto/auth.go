package dto

// LoginRequest describes the admin login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
