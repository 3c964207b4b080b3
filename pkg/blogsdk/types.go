package blogsdk

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Users
// ============================================================================

// UserDTO is the public view of a user. Token is only set by /api/login.
type UserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Token    string `json:"token,omitempty"`
}

// UserResponse wraps a user for /api/register and /api/login.
type UserResponse struct {
	User UserDTO `json:"user"`
}

// CurrentUserResponse is returned by /api/user.
type CurrentUserResponse struct {
	LoginOK  bool     `json:"loginOk"`
	JWTToken string   `json:"jwtToken,omitempty"`
	User     *UserDTO `json:"user,omitempty"`
}

// RegisterRequest is the body of /api/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest is the body of /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of /api/changePassword.
type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"newpassword"`
}

// ResetPasswordRequest is the body of /api/resetPassword.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetChangePasswordRequest is the body of /api/resetChangePassword.
type ResetChangePasswordRequest struct {
	Password string `json:"password"`
	ResetID  string `json:"resetId"`
}

// ============================================================================
// Generic results
// ============================================================================

// ResultResponse carries a short status message, e.g. {"result":"Success!"}.
type ResultResponse struct {
	Result string `json:"result"`
}

// ExistResponse is returned by /api/isResetIdOk/{resetId}.
type ExistResponse struct {
	Exist bool `json:"exist"`
}

// ErrorResponse is the field-keyed error body of every 4xx/5xx.
type ErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// IDResponse is returned when a document is created and its id is echoed.
type IDResponse struct {
	ID string `json:"id"`
}

// ============================================================================
// Documents
// ============================================================================

// Document is a schemaless JSON object.
type Document map[string]any

// DocumentEntry pairs a document id with its payload, as listed by
// /api/authors and /api/categories.
type DocumentEntry struct {
	ID     string   `json:"id"`
	Result Document `json:"result"`
}

// AuthorDetail is the subset of an author returned by /api/authors/{id}.
type AuthorDetail struct {
	ID           string `json:"id"`
	FirstName    any    `json:"firstname"`
	LastName     any    `json:"lastname"`
	Email        any    `json:"email"`
	Profile      any    `json:"profile"`
	ThumbnailURL any    `json:"thumbnail_url"`
}
