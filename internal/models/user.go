package models

type Role string

const (
	RoleViewer Role = "viewer"
	RoleAdmin  Role = "admin"
	RoleGod    Role = "god"
)

// Roles lists every recognized role, in the order selectors offer them.
var Roles = []Role{RoleViewer, RoleAdmin, RoleGod}

func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleAdmin, RoleGod:
		return true
	}
	return false
}

// Capability checks. Route gating and template visibility go through these
// rather than comparing role strings at each call site.

func (r Role) CanCreateEntries() bool {
	return r == RoleViewer || r == RoleGod
}

func (r Role) CanViewLogs() bool {
	return r == RoleAdmin || r == RoleGod
}

func (r Role) CanExportLogs() bool {
	return r.CanViewLogs()
}

func (r Role) CanManageUsers() bool {
	return r == RoleGod
}

// User mirrors the account record served by the backend. The password is
// write-only: it is sent on create/update and never read back.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
