// Package inmemory is a hashicorp/go-memdb implementation of store.Store.
// It backs the engine tests and lets the service run without Postgres.
// MemDB allows a single concurrent writer, which is what makes the rent and
// return transactions atomic here.
package inmemory

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
)

const (
	userTable     = "user"
	bookTable     = "book"
	rentalTable   = "rental"
	userBookTable = "user_book"
)

type Memory struct {
	db *memdb.MemDB

	// Next ids, only touched while holding the memdb writer lock.
	userSeq     uint
	bookSeq     uint
	rentalSeq   uint
	userBookSeq uint
}

func New() (*Memory, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			userTable: {
				Name: userTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					"email": {
						Name:    "email",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Email"},
					},
				},
			},
			bookTable: {
				Name: bookTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
				},
			},
			rentalTable: {
				Name: rentalTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					"book_id": {
						Name:    "book_id",
						Unique:  false,
						Indexer: &memdb.UintFieldIndex{Field: "BookID"},
					},
				},
			},
			userBookTable: {
				Name: userBookTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.UintFieldIndex{Field: "ID"},
					},
					"user_id": {
						Name:    "user_id",
						Unique:  false,
						Indexer: &memdb.UintFieldIndex{Field: "UserID"},
					},
				},
			},
		},
	}

	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("init memdb: %w", err)
	}
	return &Memory{db: db}, nil
}
