package api

// LoginRequest represents an authentication request.
// The credential field accepts either a username or an email.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password"        validate:"required"`
}

// SignupRequest represents a registration request
type SignupRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone"    validate:"max=20"`
	Website  string `json:"website"  validate:"max=100"`
}

// AuthResponse represents a successful login/signup/introspection response.
// Token is a pointer so identity-introspection endpoints can return it as
// null without echoing a session token.
type AuthResponse struct {
	Token    *string `json:"token"`
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
}

// ErrorResponse represents an error reply
type ErrorResponse struct {
	Error   string `json:"error"`             // HTTP status text
	Message string `json:"message,omitempty"` // human readable detail
}

// MessageResponse represents a plain confirmation reply
type MessageResponse struct {
	Message string `json:"message"`
}
