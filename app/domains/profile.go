package domains

// User types a profile can declare.
const (
	UserTypeFarmer = "farmer"
	UserTypeBuyer  = "buyer"
	UserTypeBoth   = "both"
)

// UserProfile is the per-user descriptive record kept in the backend's
// profiles table, distinct from the authentication identity. Wire field
// names are flat lowercase (backend contract).
type UserProfile struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	UserType    string `json:"usertype"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
