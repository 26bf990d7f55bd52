package domain

// UserRole is the company-wide role of a user.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

// User represents a member of a company as seen by the approval workflow.
// Users are managed outside this service; the workflow only reads them.
type User struct {
	UserID    string   `json:"userID"`
	CompanyID string   `json:"companyID"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	ManagerID *string  `json:"managerID,omitempty"` // Nullable self reference
	IsActive  bool     `json:"isActive"`
	AuditFields
}

// CanApprove reports whether the user may act on approval requests at all.
func (u User) CanApprove() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
