package models

// AuthRequest is the body of both register and login calls.
type AuthRequest struct {
	AccountKey string `json:"account_key"`
	Secret     string `json:"secret"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	Token string `json:"token"`
}
