package domain

import (
	"time"

	"github.com/google/uuid"
)

// FactKind separates actionable tips from trivia facts.
type FactKind string

const (
	FactKindTip  FactKind = "tip"
	FactKindFact FactKind = "fact"
)

// Fact is a reusable tip or fact from the shared content pool.
type Fact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Kind      FactKind  `gorm:"type:varchar(5);not null;index" json:"kind"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Fact) TableName() string {
	return "facts"
}

// CreateFactRequest is the request body for adding a tip or fact.
// @Description New content pool entry.
type CreateFactRequest struct {
	// tip or fact
	Kind FactKind `json:"kind" validate:"required,oneof=tip fact" example:"tip"`
	// Content text
	Text string `json:"text" validate:"required,max=2000" example:"Keep the bedroom cool and dark."`
}

// Achievement marks a survey-count milestone for a user.
type Achievement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"type:varchar(32);not null" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Achievement) TableName() string {
	return "achievements"
}
