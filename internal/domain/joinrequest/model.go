package joinrequest

import (
	"time"

	"campus-clubs-go/internal/domain/club"
)

const StatusPending = "pending"

// JoinRequest is a student's application to join a club. The application
// only ever creates and reads these rows; status stays pending.
type JoinRequest struct {
	ID          uint   `gorm:"primaryKey"`
	ClubID      uint   `gorm:"not null;index"`
	StudentName string `gorm:"not null"`
	Email       string `gorm:"not null"`
	Phone       string
	Year        string
	Department  string
	Reason      string
	Status      string    `gorm:"default:pending"`
	SubmittedAt time.Time `gorm:"autoCreateTime"`

	Club club.Club `gorm:"foreignKey:ClubID;references:ID;constraint:OnDelete:CASCADE"`
}

func (JoinRequest) TableName() string { return "join_requests" }

// CreateInput carries the join form fields. Phone and reason are optional;
// everything else must be present. Values are stored verbatim.
type CreateInput struct {
	ClubID      uint   `validate:"required"`
	StudentName string `validate:"required"`
	Email       string `validate:"required"`
	Phone       string
	Year        string `validate:"required"`
	Department  string `validate:"required"`
	Reason      string
}
