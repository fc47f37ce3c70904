package inmemory

import (
	"github.com/hashicorp/go-memdb"

	"github.com/the1kimko/book-rental-management-system/models"
	"github.com/the1kimko/book-rental-management-system/store"
)

// Availability ledger, memdb edition: the only write paths for
// Book.Available, mirroring the guarded updates in the db package. Both run
// inside the caller's write transaction.

func getBook(txn *memdb.Txn, id uint) (*models.Book, error) {
	raw, err := txn.First(bookTable, "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, store.ErrBookNotFound
	}
	cp := *raw.(*models.Book)
	return &cp, nil
}

func reserveCopy(txn *memdb.Txn, bookID uint) error {
	b, err := getBook(txn, bookID)
	if err != nil {
		return err
	}
	if b.Available <= 0 {
		return store.ErrBookUnavailable
	}
	b.Available--
	return txn.Insert(bookTable, b)
}

func releaseCopy(txn *memdb.Txn, bookID uint) error {
	b, err := getBook(txn, bookID)
	if err != nil {
		// A book row gone while a rental was open is ledger corruption.
		return store.ErrConsistency
	}
	if b.Available >= b.Copies {
		return store.ErrConsistency
	}
	b.Available++
	return txn.Insert(bookTable, b)
}
