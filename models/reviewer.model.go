package models

import (
	"time"
)

// Reviewer is a person who can author reviews, uniquely identified by email.
// CreatedAt is nullable: ingested legacy records have no known creation time.
// Timestamps are managed by the service layer, not by GORM.
type Reviewer struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"unique;not null" json:"email"`
	Name      string     `gorm:"not null" json:"name"`
	Country   string     `gorm:"type:varchar(3);not null" json:"country"`
	CreatedAt *time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (Reviewer) TableName() string { return "reviewer" }
