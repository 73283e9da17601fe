package models

import (
	"time"
)

// FAQ is a frequently asked question shown on the public site
type FAQ struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"not null;size:300" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Position int    `gorm:"default:0" json:"position"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// TableName returns the table name for FAQ
func (FAQ) TableName() string {
	return "faqs"
}

// Testimonial is a client testimonial shown on the public site
type Testimonial struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AuthorName     string    `gorm:"not null;size:100" json:"author_name"`
	AuthorLocation string    `gorm:"size:100" json:"author_location,omitempty"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	Rating         int       `gorm:"default:5" json:"rating"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for Testimonial
func (Testimonial) TableName() string {
	return "testimonials"
}
