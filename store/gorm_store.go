package store

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate key")

// GormStore implements the repositories used by the services on top of GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB exposes the pool for health checks.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

// validID reports whether every id is a canonical uuid. Anything else would
// make Postgres reject the query, so callers treat it as "no such row".
func validID(ids ...string) bool {
	for _, id := range ids {
		if len(id) != 36 {
			return false
		}
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
