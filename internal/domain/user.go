package domain

// UserRole separates customers from salon staff.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User is an account record owned by the salon API.
type User struct {
	ID       int64
	Email    string
	Username string
	Age      int
	Phone    string
	Role     UserRole
}
