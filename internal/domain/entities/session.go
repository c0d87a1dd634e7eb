package entities

// Role is the coarse staff role. There is no per-record ownership.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTecnico Role = "tecnico"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTecnico
}

// Session is the authenticated identity handed to every operation that
// needs one. It is built by the auth middleware, never looked up inside
// business logic.
type Session struct {
	UID   string
	Email string
	Role  Role
}

func (s Session) IsAuthenticated() bool {
	return s.UID != ""
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
