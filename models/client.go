package models

import "time"

type Client struct {
	Id          uint   `json:"id" gorm:"primaryKey"`
	UserID      string `json:"-" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Notes       string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
