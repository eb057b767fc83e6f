package repository

import "gorm.io/gorm"

type SequenceRepository interface {
	// Next atomically increments and returns the counter for a role. Safe to
	// call inside the transaction that inserts the profile using the code.
	Next(db *gorm.DB, role string) (int, error)
}
