package models

import "time"

const RentalTable = "rentals"
const UserBookTable = "user_books"

type Rental struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`
	BookID uint `gorm:"index;not null" json:"bookId"`

	RentedAt time.Time `gorm:"index;not null" json:"rentedAt"`
	DueAt    time.Time `gorm:"not null" json:"dueAt"`

	// nil while the rental is open; set exactly once on return.
	ReturnedAt *time.Time `gorm:"index" json:"returnedAt,omitempty"`
	Penalty    float64    `gorm:"not null;default:0" json:"penalty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Rental) Active() bool { return r.ReturnedAt == nil }

// UserBook is the append-only "has borrowed" log. Rows are written when a
// rental starts and survive its return.
type UserBook struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`
	BookID uint `gorm:"index;not null" json:"bookId"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Rental) TableName() string   { return RentalTable }
func (UserBook) TableName() string { return UserBookTable }
