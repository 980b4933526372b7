package bootstrap

import "context"

// AuditLog satu kejadian operasional yang perlu jejak permanen,
// misalnya server start/stop.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
