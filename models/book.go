package models

import "time"

const BookTable = "books"

type Book struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Title  string  `gorm:"size:255;not null;index" json:"title"`
	Author string  `gorm:"size:255;not null;index" json:"author"`
	Genre  *string `gorm:"size:120;index" json:"genre,omitempty"`

	// Copies is the total ever provisioned for this title; Available is the
	// number currently on the shelf. available + open rentals == copies.
	Copies    int `gorm:"not null" json:"copies"`
	Available int `gorm:"not null;check:available >= 0" json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Book) TableName() string { return BookTable }
