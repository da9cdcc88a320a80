package audit

import (
	"go.uber.org/zap"
)

type Entry struct {
	UserID     int64
	Action     string
	EntityType string
	EntityID   int64
	IP         string
	RequestID  string
	Outcome    string
}

// Write records an audit entry on the "audit" logger. A nil logger drops it.
func Write(log *zap.Logger, e Entry) {
	if log == nil {
		return
	}

	fields := []zap.Field{
		zap.String("action", e.Action),
		zap.String("outcome", e.Outcome),
	}
	if e.UserID != 0 {
		fields = append(fields, zap.Int64("user_id", e.UserID))
	}
	if e.EntityType != "" {
		fields = append(fields, zap.String("entity_type", e.EntityType))
	}
	if e.EntityID != 0 {
		fields = append(fields, zap.Int64("entity_id", e.EntityID))
	}
	if e.IP != "" {
		fields = append(fields, zap.String("ip", e.IP))
	}
	if e.RequestID != "" {
		fields = append(fields, zap.String("request_id", e.RequestID))
	}

	log.Named("audit").Info("audit", fields...)
}
