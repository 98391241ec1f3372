package model

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password;size:255;not null"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
