package domain

// EnforceRequest asks whether a user may perform action on resource.
type EnforceRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// Built-in role names seeded by cmd/migrate.
const (
	RoleAdmin       = "admin"
	RoleHRManager   = "hr-manager"
	RoleHRAssistant = "hr-assistant"
	RoleManager     = "manager"
	RoleEmployee    = "employee"
)

// Permission actions used across route groups.
const (
	ActionRead    = "read"
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionImport  = "import"
	ActionExport  = "export"
)
