package logs

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Audit writes entry on behalf of the caller on c. A failed write is logged and
// never surfaces to the request.
func Audit(l AuditLogger, c *gin.Context, entry SystemLog, payload any) {
	if entry.Level == "" {
		entry.Level = LevelInfo
	}
	if entry.UserID == nil && c != nil {
		if v, ok := c.Get("userID"); ok {
			if f, ok := v.(float64); ok {
				uid := uint(f)
				entry.UserID = &uid
			}
		}
	}
	if err := l.Log(entry, payload); err != nil {
		zap.L().Warn("failed to insert audit log",
			zap.String("service", entry.Service),
			zap.String("action", entry.Action),
			zap.Error(err))
	}
}
