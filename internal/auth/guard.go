package auth

// Decision is the outcome of Guard. The zero value denies.
type Decision int

const (
	Unauthenticated Decision = iota
	Forbidden
	Allowed
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Forbidden:
		return "forbidden"
	default:
		return "unauthenticated"
	}
}

// Guard decides whether ac may enter a section restricted to allowed.
// It fails closed: no session, no role, or an empty allow-list all deny.
func Guard(ac AuthContext, allowed RoleSet) Decision {
	if !ac.IsAuthenticated {
		return Unauthenticated
	}
	if !allowed.Contains(ac.Role) {
		return Forbidden
	}
	return Allowed
}
