package dto

// SignUpRequest creates a new account.
type SignUpRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// SignInRequest exchanges credentials for a session.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest asks for a password recovery email.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PostListingRequest publishes a harvest listing. Unit defaults to kg when
// omitted. Contact must be a Togolese phone number.
type PostListingRequest struct {
	CropType    string `json:"croptype" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
	Unit        string `json:"unit" validate:"omitempty,oneof=kg sac tonne"`
	Location    string `json:"location" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Contact     string `json:"contact" validate:"required,togophone"`
	Description string `json:"description"`
}

// SaveProfileRequest saves the signed-in user's profile.
type SaveProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required,togophone"`
	Location    string `json:"location" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	UserType    string `json:"usertype" validate:"omitempty,oneof=farmer buyer both"`
	Description string `json:"description"`
}
