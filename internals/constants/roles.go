package constants

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// AllowedStaffRoles dipakai middleware untuk guard console staff
var AllowedStaffRoles = []string{RoleStaff, RoleAdmin}
