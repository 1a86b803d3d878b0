package api

import "context"

// loginRequest is the credential payload for login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerRequest is the credential payload for registration.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. The token is opaque
// to the client: it is stored as-is and trusted until a request using
// it fails.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	if err := c.postJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &res); err != nil {
		return nil, c.fail("login", err)
	}
	return &res, nil
}

// Register creates a new account and returns its first token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	var res AuthResult
	if err := c.postJSON(ctx, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &res); err != nil {
		return nil, c.fail("register", err)
	}
	return &res, nil
}
