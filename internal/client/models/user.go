// Package models defines the wire/storage shapes of the Ourganize entities.
// JSON tags match the GraphQL field names, so the same structs are used for
// API responses and for local-store persistence.
package models

// Profession is a read-only lookup entity. The client fetches the full list
// once per session and never mutates it.
type Profession struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// User is the authenticated identity. EmailVerifiedAt is nil until the user
// confirms their address.
type User struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	EmailVerifiedAt *string     `json:"email_verified_at"`
	Avatar          string      `json:"avatar,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	Country         string      `json:"country,omitempty"`
	ProfessionID    *string     `json:"profession_id,omitempty"`
	Profession      *Profession `json:"profession,omitempty"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

// IsEmailVerified reports whether the server has recorded a verification
// timestamp for the user.
func (u *User) IsEmailVerified() bool {
	return u != nil && u.EmailVerifiedAt != nil && *u.EmailVerifiedAt != ""
}

// AuthPayload is the response shape of the Login and Register mutations.
type AuthPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}

// StatusResponse is the generic shape of status-only mutations such as
// Logout, VerifyEmail, ResendVerificationEmail and DeleteAccount.
type StatusResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Verified bool   `json:"verified,omitempty"`
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

// RegisterInput carries registration credentials. PasswordConfirmation must
// equal Password; the server validates the pair.
type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// UpdateProfileInput carries the writable profile fields.
type UpdateProfileInput struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ProfessionID *string `json:"profession_id"`
}

// VerifyEmailInput carries the signed verification-link parameters.
type VerifyEmailInput struct {
	ID        string `json:"id"`
	Hash      string `json:"hash"`
	Expires   int64  `json:"expires"`
	Signature string `json:"signature"`
}
