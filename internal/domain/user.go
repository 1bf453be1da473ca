package domain

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type StaffRole string

const StaffRoleOwner StaffRole = "owner"

// StaffUser is the profile returned to the staff portal after a successful login.
type StaffUser struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  StaffRole `json:"role"`
}
