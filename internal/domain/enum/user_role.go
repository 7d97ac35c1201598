package enum

// UserRole grants access to the operator API.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleOperator UserRole = "operator"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleOperator
}
