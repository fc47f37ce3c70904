package db

import (
	"fmt"

	"github.com/the1kimko/book-rental-management-system/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return conn, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Book{}, &models.Rental{}, &models.UserBook{}); err != nil {
		return err
	}

	// At most one open rental per (user, book); backstop for the engine's
	// in-transaction check.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE UNIQUE INDEX IF NOT EXISTS %s_one_open_per_user_book
	  ON %s (user_id, book_id)
	  WHERE returned_at IS NULL;
	`, models.RentalTable, models.RentalTable)).Error; err != nil {
		return err
	}

	// Open rentals by book, for availability audits.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_by_book
	  ON %s (book_id, rented_at DESC)
	  WHERE returned_at IS NULL;
	`, models.RentalTable, models.RentalTable)).Error; err != nil {
		return err
	}

	return nil
}
