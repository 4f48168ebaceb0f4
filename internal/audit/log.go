package audit

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"maricoleta.org/internal/auth"
	"maricoleta.org/internal/obs"
)

type ctxKey string

const requestIDKey ctxKey = "audit_request_id"

// WithRequestID attaches the request identifier to the context for audit
// logging.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// Log writes structured audit events for privileged mutations.
type Log struct {
	logger *zap.Logger
}

// New wires the audit trail to the given logger; a nil logger falls back to
// the shared one.
func New(logger *zap.Logger) *Log {
	if logger == nil {
		logger = obs.Logger()
	}
	return &Log{logger: logger}
}

// Event records one audit entry enriched with request and actor context.
func (l *Log) Event(ctx context.Context, event string, fields map[string]string) error {
	event = strings.TrimSpace(event)
	if event == "" {
		return errors.New("event name is required")
	}

	zfields := make([]zap.Field, 0, len(fields)+3)
	zfields = append(zfields, zap.String("type", "audit"), zap.String("event", event))
	if rid := requestIDFromContext(ctx); rid != "" {
		zfields = append(zfields, zap.String("request_id", rid))
	}
	if principal, ok := auth.PrincipalFromContext(ctx); ok {
		zfields = append(zfields, zap.String("actor_user_id", principal.UserID))
	}
	for k, v := range fields {
		zfields = append(zfields, zap.String(k, v))
	}
	l.logger.Info("audit", zfields...)
	return nil
}
