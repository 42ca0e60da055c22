package postgres

import (
	"database/sql"

	"volunteer-portal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.TeamRequirementsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                         db,
		TeamRequirementsRepository: NewTeamRequirementsRepository(db),
	}
}

// DB exposes the underlying handle for health checks
func (s *Store) DB() *sql.DB {
	return s.db
}
