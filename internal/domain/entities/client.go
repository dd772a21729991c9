package entities

import "strings"

// Client is a registered buyer, keyed by a unique Cpf.
//
// Storage model (DynamoDB):
//   - PK: id
//   - unique guard: client_cpf#<cpf> -> id
type Client struct {
	Base
	Name  string `json:"name"`
	Email string `json:"email"`
	Cpf   Cpf    `json:"-"`
}

func NewClient(name, email string, cpf Cpf) (*Client, error) {
	if cpf.IsZero() {
		return nil, ErrInvalidCpf
	}
	c := &Client{Base: newBase(), Cpf: cpf}
	if err := c.apply(name, email); err != nil {
		return nil, err
	}
	return c, nil
}

// Update changes the contact data; the Cpf is fixed at creation.
func (c *Client) Update(name, email string) error {
	if err := c.apply(name, email); err != nil {
		return err
	}
	c.touch()
	return nil
}

func (c *Client) apply(name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return ErrInvalidName
	}
	if email == "" {
		return ErrInvalidEmail
	}
	c.Name = name
	c.Email = email
	return nil
}
