package domain

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Credentials are what the login form collects and forwards verbatim to the
// backend token endpoint. The console never hashes or stores passwords.
type Credentials struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Registration is the sign-up payload. ConfirmPassword is checked locally
// before any network call and is never sent to the backend.
type Registration struct {
	Email           string `json:"email" form:"email" validate:"required,email"`
	Username        string `json:"username" form:"username" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"-" form:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" form:"role" validate:"omitempty,oneof=admin client"`
}

// TokenPair is the backend token endpoint's response. The refresh token is
// decoded for completeness but the console implements no refresh rotation;
// only the access token is ever persisted.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}
