package model

import "time"

// SessionSlotModel mirrors the 'session_slots' table. Each row is one named slot of the client session.
type SessionSlotModel struct {
	Name      string `gorm:"primaryKey;type:varchar(32)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionSlotModel) TableName() string {
	return "session_slots"
}

// UserSnapshot is the JSON document stored in the user slot.
type UserSnapshot struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"user_type"`
	DisplayName string `json:"display_name"`
}
