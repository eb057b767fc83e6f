package repository

import (
	domainRepo "healthhub/internal/domain/repository"

	"gorm.io/gorm"
)

type sequenceRepository struct{}

func NewSequenceRepository() domainRepo.SequenceRepository {
	return &sequenceRepository{}
}

// Next relies on the upsert being atomic: concurrent submissions for the same
// role serialize on the row lock, so no two profiles ever share a code.
func (r *sequenceRepository) Next(db *gorm.DB, role string) (int, error) {
	var next int
	err := db.Raw(`
		INSERT INTO role_sequences (role, last_value)
		VALUES (?, 1)
		ON CONFLICT (role)
		DO UPDATE SET last_value = role_sequences.last_value + 1
		RETURNING last_value`, role,
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
