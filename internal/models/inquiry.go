package models

import (
	"time"
)

// Inquiry kinds
const (
	KindGeneral  = "general"
	KindPurchase = "purchase"
)

// Inquiry represents a contact form message or a purchase inquiry
type Inquiry struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null;size:100" json:"name"`
	Email   string `gorm:"not null;size:255" json:"email"`
	Phone   string `gorm:"size:20" json:"phone,omitempty"`
	Message string `gorm:"type:text" json:"message"`

	// Kind is set server-side, never taken from client input
	Kind string `gorm:"not null;size:20;default:'general';index" json:"kind"`

	// Painting is set for purchase inquiries only
	PaintingID *uint `gorm:"index" json:"painting_id,omitempty"`

	IsRead     bool `gorm:"default:false" json:"is_read"`
	IsArchived bool `gorm:"default:false" json:"is_archived"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	IPAddress string    `gorm:"size:45" json:"ip_address,omitempty"`

	// Delivery tracking for the notification email. The four fields are
	// written together as a unit after each send attempt, never partially.
	EmailStatus      *bool      `json:"email_status,omitempty"`
	EmailAttemptedAt *time.Time `json:"email_attempted_at,omitempty"`
	EmailError       string     `gorm:"type:text" json:"email_error,omitempty"`
	EmailDetail      string     `gorm:"type:text" json:"email_detail,omitempty"`

	// Relationships
	Painting *Painting `gorm:"foreignKey:PaintingID;constraint:OnDelete:SET NULL" json:"painting,omitempty"`
}

// TableName returns the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}

// InquiryListItem is a lightweight version for admin list views
type InquiryListItem struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Kind             string     `json:"kind"`
	PaintingID       *uint      `json:"painting_id,omitempty"`
	IsRead           bool       `json:"is_read"`
	IsArchived       bool       `json:"is_archived"`
	CreatedAt        time.Time  `json:"created_at"`
	EmailStatus      *bool      `json:"email_status,omitempty"`
	EmailAttemptedAt *time.Time `json:"email_attempted_at,omitempty"`
}
