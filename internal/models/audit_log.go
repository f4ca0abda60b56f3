package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Email   string `gorm:"size:255;index"`
	Role    Role   `gorm:"type:varchar(20)"`
	Action  string `gorm:"size:50;not null"` // "login", "login_failed", "action:<id>"
	Details string `gorm:"type:text"`
}
