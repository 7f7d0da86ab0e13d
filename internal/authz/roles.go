package authz

// Role ids carried in dashboard JWT claims.
const (
	RoleUser     = 10
	RoleAgent    = 20
	RoleEmployee = 30
	RoleAdmin    = 50
)

// IsElevated reports whether the role may see the full pipeline and assign
// owners. Regular users and agents only ever see their own orders upstream.
func IsElevated(roleID int) bool {
	return roleID == RoleEmployee || roleID == RoleAdmin
}
