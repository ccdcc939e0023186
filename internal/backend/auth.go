package backend

import (
	"context"
	"net/http"

	"github.com/target/leave-ui/internal/domain/model"
)

// LoginResult is the backend's response to a successful credential exchange.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. A 401 is reported as an authentication error
// and does not notify unauthorized observers.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
		out:    &out,
		login:  true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the profile of the user owning the context's token.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, call{op: "me", method: http.MethodGet, path: "/auth/me", out: &out}); err != nil {
		return nil, err
	}
	return &out, nil
}
