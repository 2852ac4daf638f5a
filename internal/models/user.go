package models

// Role is the fleet role carried by the identity provider's token. The core
// never authenticates; it only narrows driver access to driver-owned records.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleOperator      Role = "operator"
	RoleDriver        Role = "driver"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleOperator, RoleDriver:
		return true
	}
	return false
}

// Actor identifies the authenticated caller of a service operation. The ID is
// the opaque user id issued by the identity provider.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
