package models

// Alias is a forwarding e-mail alias returned by the alias API.
type Alias struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	// CreatedAt is kept as sent ("2006-01-02 15:04:05").
	CreatedAt string `json:"created_at"`
}

// AliasesResponse is the envelope of GET /api/v1/aliases.
type AliasesResponse struct {
	Data []Alias `json:"data"`
}

// APIError is the error body returned by the alias API.
type APIError struct {
	Message string `json:"message"`
}
