package models

// Role values returned by the API.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the profile of an account on the remote API.
type User struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	PhoneNumber       string `json:"phoneNumber"`
	Role              string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
