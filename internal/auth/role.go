package auth

type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleVenue   Role = "venue"
)

// ParseRole matches s exactly against the known roles. Anything else,
// including differently cased spellings, is reported as not ok.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleUser, RoleManager, RoleVenue:
		return r, true
	}
	return "", false
}

// RoleSet is an allow-list of roles.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Contains(r Role) bool {
	if r == "" {
		return false
	}
	_, ok := s[r]
	return ok
}

// AuthContext describes the caller of a request. The zero value is an
// anonymous caller.
type AuthContext struct {
	UserID          string
	Role            Role
	IsAuthenticated bool
}

func Anonymous() AuthContext {
	return AuthContext{}
}
