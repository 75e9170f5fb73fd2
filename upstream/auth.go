package upstream

import (
	"context"
	"net/http"
)

// LoginResult is the payload a successful login yields.
type LoginResult struct {
	Token    string
	UserID   string
	UserType string
}

type loginData struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}

// Login authenticates against POST /api/login. The backend returns the auth
// token at the top level of the envelope and the identity under data.
func (c *Client) Login(ctx context.Context, email, password, role string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password, "role": role}
	env, err := c.doJSON(ctx, nil, http.MethodPost, "/api/login", body)
	if err != nil {
		return nil, err
	}

	var data loginData
	if err := decodeData(env, "/api/login", &data); err != nil {
		return nil, err
	}
	if env.Token == "" {
		return nil, newError(CodeUpstream, "login response missing token", nil)
	}
	return &LoginResult{Token: env.Token, UserID: data.UserID, UserType: data.UserType}, nil
}

// Register creates an account via POST /api/register.
func (c *Client) Register(ctx context.Context, username, email, password, role string) (string, error) {
	body := map[string]string{
		"username":  username,
		"email":     email,
		"password":  password,
		"user_type": role,
	}
	env, err := c.doJSON(ctx, nil, http.MethodPost, "/api/register", body)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
