package models

import "time"

const UserTable = "users"

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null;index" json:"name"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return UserTable }
