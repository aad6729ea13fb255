package models

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(50);uniqueIndex;not null"`
}

type User struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FirstName             string     `gorm:"type:varchar(100);not null"`
	LastName              string     `gorm:"type:varchar(100);not null"`
	Email                 string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone                 *string    `gorm:"type:varchar(50);uniqueIndex"`
	PasswordHash          string     `gorm:"type:varchar(255);not null"`
	RoleID                uuid.UUID  `gorm:"type:uuid;not null;index"`
	PreferredLanguage     string     `gorm:"type:varchar(10);not null;default:'fr'"`
	IsVerified            bool       `gorm:"not null;default:false"`
	VerificationToken     *string    `gorm:"type:varchar(255);index"`
	ResetPasswordToken    *string    `gorm:"type:varchar(255);index"`
	ResetPasswordExpireAt *time.Time `gorm:"type:timestamp"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Role Role `gorm:"foreignKey:RoleID"`
}
