package domains

// Auth change events pushed to session subscribers.
const (
	AuthEventSignedIn  = "SIGNED_IN"
	AuthEventSignedOut = "SIGNED_OUT"
)

// User is the authentication identity owned by the remote backend.
type User struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	CreatedAt    string                 `json:"created_at,omitempty"`
}

// Session is the token bundle returned by the backend's identity service.
// It lives in memory only for the duration of the process.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}
