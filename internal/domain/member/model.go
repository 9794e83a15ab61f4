package member

import (
	"time"

	"campus-clubs-go/internal/domain/club"
)

// Officer roles with a fixed display priority; anything else sorts last.
const (
	RolePresident     = "President"
	RoleVicePresident = "Vice President"
	RoleSecretary     = "Secretary"
	RoleTreasurer     = "Treasurer"
)

type Member struct {
	ID         uint   `gorm:"primaryKey"`
	ClubID     uint   `gorm:"not null;index"`
	Name       string `gorm:"not null"`
	Role       string
	Photo      string `gorm:"default:default-avatar.png"`
	Bio        string
	Year       string
	Department string
	Email      string
	JoinedDate time.Time

	Club club.Club `gorm:"foreignKey:ClubID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Member) TableName() string { return "members" }
