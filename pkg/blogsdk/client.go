package blogsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Ngx Blog API. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new blog API client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with email and password and returns a Session
// holding the issued token.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var out UserResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", "", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}

	return c.NewSessionFromToken(out.User.Token), nil
}

// NewSessionFromToken creates a Session from a previously issued token.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Register creates a new account.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	var out UserResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/register", "", req, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ResetPassword asks the service to email a reset link. It succeeds for
// unknown addresses too.
func (c *SDKClient) ResetPassword(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/resetPassword", "", ResetPasswordRequest{Email: email}, nil)
}

// IsResetIDOK reports whether resetID names a pending reset.
func (c *SDKClient) IsResetIDOK(ctx context.Context, resetID string) (bool, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/isResetIdOk/"+resetID, "", nil, nil)
	if err != nil {
		return false, err
	}

	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return false, nil
	}

	var out ExistResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.Exist, nil
}

// ResetChangePassword sets a new password using a reset id.
func (c *SDKClient) ResetChangePassword(ctx context.Context, resetID, password string) error {
	req := ResetChangePasswordRequest{Password: password, ResetID: resetID}
	return c.doJSON(ctx, http.MethodPost, "/api/resetChangePassword", "", req, nil)
}
