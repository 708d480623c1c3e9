package api

import (
	"context"
	"net/http"

	"github.com/RuthlessG-CYBER/renthub-bot/internal/model"
)

// Credentials is the login/signup payload. Name is only used on signup.
type Credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login exchanges credentials for a token and the user record.
func (c *Client) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	var resp authResponse
	err := c.do(ctx, "login", http.MethodPost, "/login", Credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.User, nil
}

// Signup registers a new account. The backend logs the account in right
// away, so the token and user are returned just like Login.
func (c *Client) Signup(ctx context.Context, name, email, password string) (string, *model.User, error) {
	var resp authResponse
	err := c.do(ctx, "signup", http.MethodPost, "/signup", Credentials{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.User, nil
}
