package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/devfolio/folio-api/internal/enum"
	"github.com/devfolio/folio-api/internal/utils"
)

// ContactMessage represents a contact form submission stored in the database
type ContactMessage struct {
	ID      string `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Name    string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email   string `gorm:"column:email;type:varchar(255);index;not null" json:"email"`
	Subject string `gorm:"column:subject;type:varchar(200);not null" json:"subject"`
	Message string `gorm:"column:message;type:text;not null" json:"message"`

	// Request metadata captured at submission time
	Timestamp     time.Time `gorm:"column:timestamp;type:timestamp;index;not null" json:"timestamp"`
	SourceAddress string    `gorm:"column:source_address;type:varchar(64);not null" json:"sourceAddress"`
	UserAgent     string    `gorm:"column:user_agent;type:varchar(512);not null" json:"userAgent"`

	// Triage state
	Status     enum.MessageStatus `gorm:"column:status;type:varchar(20);index;default:'unread'" json:"status"`
	IsSpam     bool               `gorm:"column:is_spam;default:false" json:"isSpam"`
	SpamReason string             `gorm:"column:spam_reason;type:text" json:"spamReason,omitempty"`

	// Standard timestamps
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamp;default:current_timestamp" json:"updatedAt"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = utils.GenerateNanoIDWithPrefix("cmsg", 24)
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = utils.Now()
	}
	if m.Status == "" {
		m.Status = enum.MessageStatusUnread
	}
	if m.UserAgent == "" {
		m.UserAgent = "Unknown"
	}
	m.CreatedAt = utils.Now()
	return nil
}
