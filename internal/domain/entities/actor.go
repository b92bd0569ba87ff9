package entities

// UserType mirrors the external user_type enumeration.
type UserType string

const (
	UserTypeOwner  UserType = "owner"
	UserTypeSitter UserType = "sitter"
	UserTypeAdmin  UserType = "admin"
	// UserTypeSystem is used for ledger rows written by sweeps and the notify endpoint.
	UserTypeSystem UserType = "system"
)

// Actor is the authenticated caller of a lifecycle operation.
type Actor struct {
	ID    string
	Role  UserType
	Email string
}

func (a Actor) IsAdmin() bool {
	return a.Role == UserTypeAdmin
}

// SystemActor is used for writes not triggered by a person.
var SystemActor = Actor{ID: "system", Role: UserTypeSystem}

// Profile is the read-only view of a marketplace user, used to address notifications.
type Profile struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	UserType UserType `json:"user_type"`
}
