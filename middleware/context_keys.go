package middleware

// Context keys set during authentication and read by handlers.
const (
	// UserIDKey holds the authenticated user's ID (string).
	UserIDKey = "userID"
	// UsernameKey holds the authenticated user's username (string).
	UsernameKey = "username"
	// RequestIDKey holds the per-request correlation ID (string).
	RequestIDKey = "request_id"
)
