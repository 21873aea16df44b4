package dto

import (
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/client"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/puntoventa/puntoventa/internal/validator"
)

// CreateClientRequest represents a request to register a client
type CreateClientRequest struct {
	Name  string `json:"name" validate:"required"`
	Code  int    `json:"code"`
	Phone string `json:"phone"`
}

func (r *CreateClientRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateClientRequest) ToClient() *client.Client {
	return &client.Client{
		ID:    types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:  r.Name,
		Code:  r.Code,
		Phone: r.Phone,
	}
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name  *string `json:"name,omitempty"`
	Code  *int    `json:"code,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Apply copies the set fields onto the client
func (r *UpdateClientRequest) Apply(c *client.Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Code != nil {
		c.Code = *r.Code
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
}

// ClientResponse represents a registered client
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      int       `json:"code,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewClientResponse(c *client.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Code:      c.Code,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ListClientsResponse is the registered client list
type ListClientsResponse struct {
	Items []*ClientResponse `json:"items"`
	Total int               `json:"total"`
}
