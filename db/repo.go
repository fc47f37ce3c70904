package db

import (
	"gorm.io/gorm"
)

// Repo is the Postgres-backed store. It satisfies store.Store; the handle is
// passed in explicitly, there is no package-level connection.
type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }
