package models

import "time"

type User struct {
	ID             uint64    `gorm:"primarykey;autoIncrement:false" json:"id"`
	Username       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password       string    `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName    string    `gorm:"type:varchar(255);not null" json:"display_name"`
	ProfilePicture string    `gorm:"type:varchar(500)" json:"profile_picture"`
	IsAdmin        bool      `gorm:"not null;default:false" json:"is_admin"`
	DateCreated    int64     `gorm:"not null" json:"date_created"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Assignments []UserTaskAssignment `gorm:"foreignKey:UserID" json:"-"`
}
