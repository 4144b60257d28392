package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Company        string    `gorm:"type:text;not null" json:"company"`
	Location       string    `gorm:"type:text" json:"location"`
	Type           string    `gorm:"type:text" json:"type"`
	Salary         string    `gorm:"type:text" json:"salary"`
	Description    string    `gorm:"type:text" json:"description"`
	SkillsRequired []string  `gorm:"serializer:json" json:"skillsRequired"`
	ApplyLink      string    `gorm:"type:text" json:"applyLink,omitempty"`
	PostedAt       time.Time `gorm:"type:timestamp;default:now()" json:"posted_at"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// JobMatch pairs a stored job with its similarity score against a
// candidate profile.
type JobMatch struct {
	Job        Job     `json:"job"`
	MatchScore float64 `json:"matchScore"`
}
