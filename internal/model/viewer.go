package model

// Role is the access level of a viewer.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Viewer is the authenticated user looking at the feed. A nil *Viewer
// means nobody is signed in.
type Viewer struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// CanModerate reports whether the viewer may perform privileged
// moderation actions. This is the single capability predicate; callers
// must not re-derive it from Role ad hoc.
func (v *Viewer) CanModerate() bool {
	return v != nil && v.Role == RoleAdmin
}
