// Package entity contains the core business objects of the admin gateway,
// mirroring the records owned by the upstream Star Store backend plus the
// gateway's own transient objects (notifications, activity entries).
package entity

// Role is the access level resolved for an admin panel account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// AdminUser is the session user of the admin panel. It is populated on
// login or session restore and cleared on logout; the gateway never
// persists it beyond the bearer token.
type AdminUser struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Avatar      string   `json:"avatar"`
	Permissions []string `json:"permissions"`
}

// IsAdmin reports whether the user may operate this surface at all.
// Editor-role accounts are locked out of the admin panel by design.
func (u AdminUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}
