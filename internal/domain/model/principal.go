package model

// Roles carried in auth tokens. Issued by the identity service; trusted
// as given here.
const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)

// Principal is the already-authenticated caller.
type Principal struct {
	ID   string
	Role string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
