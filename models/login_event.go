package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginEvent is one recorded login (password or OTP). Rows are written
// through raw SQL on the pgx pool; this model exists so migration and
// reporting share the schema.
type LoginEvent struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	LoggedInAt time.Time `json:"logged_in_at" gorm:"autoCreateTime;index"`
	Method     string    `json:"method" gorm:"type:varchar(50)"`
	IPAddress  string    `json:"ip_address" gorm:"type:varchar(64)"`
	UserAgent  string    `json:"user_agent" gorm:"type:text"`
	DeviceType string    `json:"device_type" gorm:"type:varchar(20)"`
}

func (LoginEvent) TableName() string {
	return "login_events"
}

func (e *LoginEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
