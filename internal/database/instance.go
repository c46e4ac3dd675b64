package database

import (
	"github.com/diegoclair/weekday-api/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db         *DB
	lookupRepo contract.LookupRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.lookupRepo = newLookupRepo(i.db.conn)
}

// Lookup returns the lookup history repository
func (i *instance) Lookup() contract.LookupRepo {
	return i.lookupRepo
}
