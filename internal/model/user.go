package model

// Role is the operator's permission level.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r == RoleAdmin || r == RoleCashier }

// User is an operator account. PasswordHash is a bcrypt digest; the raw
// secret is never stored.
type User struct {
	Username     string
	PasswordHash string
	Role         Role
}
