package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Identity is a verified caller. The zero value is the anonymous
// identity: no subject, no roles.
type Identity struct {
	SubjectID   string
	DisplayName string
	Email       string
	Roles       []string
}

func Anonymous() Identity {
	return Identity{}
}

func (i Identity) IsAnonymous() bool {
	return i.SubjectID == ""
}

// HasRole reports set membership; role order carries no meaning.
func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}
