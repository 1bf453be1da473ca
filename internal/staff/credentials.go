package staff

import "github.com/joao-fontenele/abai-springs-mock/internal/domain"

// mockToken is handed out on every successful login; nothing ever verifies it.
const mockToken = "mock-jwt-token"

type credential struct {
	password string
	role     domain.StaffRole
	user     domain.StaffUser
}

// credentials is keyed by email.
var credentials = map[string]credential{
	"admin@abaisprings.com": {
		password: "password123",
		role:     domain.StaffRoleOwner,
		user: domain.StaffUser{
			ID:    "1",
			Name:  "Business Owner",
			Email: "admin@abaisprings.com",
			Role:  domain.StaffRoleOwner,
		},
	},
}

func authenticate(email, password, role string) (domain.StaffUser, bool) {
	cred, ok := credentials[email]
	if !ok || cred.password != password || string(cred.role) != role {
		return domain.StaffUser{}, false
	}
	return cred.user, true
}
