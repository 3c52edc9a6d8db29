package model

const (
	RoleAdmin   = "ADMIN"
	RolePlanner = "PLANNER"
	RoleViewer  = "VIEWER"
)

// Scope is the authenticated caller extracted from the bearer token.
type Scope struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Role       string `json:"role"` // ADMIN, PLANNER or VIEWER
	HospitalID string `json:"hospital_id"`
}

// IsAdmin checks if the scope has admin role
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanResolveAlerts reports whether the caller may close alerts.
func (s Scope) CanResolveAlerts() bool {
	return s.Role == RoleAdmin || s.Role == RolePlanner
}

// CanAccessHospital restricts non-admins to their own hospital.
// An empty HospitalID on the scope means the token is not hospital-bound.
func (s Scope) CanAccessHospital(hospitalID string) bool {
	if s.IsAdmin() || s.HospitalID == "" {
		return true
	}
	return s.HospitalID == hospitalID
}
