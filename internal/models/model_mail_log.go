package models

import (
	"time"

	"gorm.io/datatypes"
)

type MailLogStatus string

const (
	MailLogStatusQueued    MailLogStatus = "queued"
	MailLogStatusDelivered MailLogStatus = "delivered"
	MailLogStatusFailed    MailLogStatus = "failed"
)

// MailLog is the audit trail of confirmation-mail hand-offs. Written outside
// the policy transactions; delivery itself belongs to the mail system.
type MailLog struct {
	ID        string         `gorm:"column:id;type:uuid;primary_key" json:"id"`
	StudentID string         `gorm:"column:student_id;type:uuid;not null;index" json:"student_id"`
	Email     string         `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Status    MailLogStatus  `gorm:"column:status;type:varchar(32);not null" json:"status"`
	Payload   datatypes.JSON `gorm:"column:payload;type:jsonb;default:'{}'" json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (MailLog) TableName() string {
	return "mail_log"
}
