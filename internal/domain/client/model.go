package client

import (
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
)

// Client is a registered customer. Credit records reference clients by id;
// walk-in customers exist only as a name on the credit record.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  int    `json:"code"`
	Phone string `json:"phone"`

	types.BaseModel
}

// TableName returns the table name for the client
func (c *Client) TableName() string {
	return "clients"
}

// Validate validates the client
func (c *Client) Validate() error {
	if c.Name == "" {
		return ierr.NewError("missing name").
			WithHint("Client name is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}
