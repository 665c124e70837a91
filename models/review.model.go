package models

import (
	"time"
)

// Review is a rated comment authored by exactly one Reviewer.
// Content is stored demojized, raw unicode emoji never reach the database.
type Review struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ReviewerID uint       `gorm:"not null;index" json:"reviewer_id"`
	Title      string     `gorm:"not null" json:"title"`
	Rating     int        `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt  *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	Reviewer Reviewer `gorm:"foreignKey:ReviewerID" json:"-"`
}

func (Review) TableName() string { return "review" }
