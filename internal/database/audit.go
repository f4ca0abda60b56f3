package database

import (
	"training-portal/internal/logger"
	"training-portal/internal/models"

	"go.uber.org/zap"
)

// CreateAuditLog records one event. Failures are logged and swallowed:
// the audit trail never blocks a page.
func CreateAuditLog(email string, role models.Role, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		Email:   email,
		Role:    role,
		Action:  action,
		Details: details,
	}
	if err := DB.Create(&record).Error; err != nil {
		logger.Logger.Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
