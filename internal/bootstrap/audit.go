package bootstrap

import "context"

// AuditLog is one audit trail entry. Meta must be JSON-encodable.
type AuditLog struct {
	Action  string
	Message string
	ActorID string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
