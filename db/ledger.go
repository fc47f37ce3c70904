package db

import (
	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"

	"gorm.io/gorm"
)

// The availability ledger: these two guarded updates are the only statements
// in the repo that write books.available. Both run inside the caller's
// transaction.

func reserveCopy(tx *gorm.DB, bookID uint) error {
	res := tx.Model(&models.Book{}).
		Where("id = ? AND available > 0", bookID).
		Update("available", gorm.Expr("available - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrBookUnavailable
	}
	return nil
}

func releaseCopy(tx *gorm.DB, bookID uint) error {
	res := tx.Model(&models.Book{}).
		Where("id = ? AND available < copies", bookID).
		Update("available", gorm.Expr("available + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the book row vanished under an open rental or the counter
		// already equals the provisioned total. Both mean the ledger is
		// broken; abort instead of clamping.
		return store.ErrConsistency
	}
	return nil
}
