package dto

type LoginRequest struct {
	Password string `json:"password"`
}

type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
	AuthEnabled   bool `json:"authEnabled"`
}
