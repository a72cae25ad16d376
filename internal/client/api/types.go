package api

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the success body of POST /auth/register and the
// error body of every endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the success body of POST /auth/login. User is kept as a
// raw field map because the server decides which user fields exist; a nil
// map means the field was missing or not an object.
type LoginResponse struct {
	User  map[string]any `json:"user"`
	Token string         `json:"token"`
}

// Profile is the arbitrary object returned by GET /users/profile.
type Profile map[string]any

func (p Profile) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}
