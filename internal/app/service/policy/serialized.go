package policy

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gympoint/backoffice/internal/models"
	"github.com/gympoint/backoffice/pkg/metrics"
)

// Serialized runs a read-decide-write sequence inside one transaction that
// holds an exclusive row lock on the student. All policy operations for the
// same student (enroll, renew, cancel, check-in) serialize on that lock;
// operations on different students never block each other. Locking the
// student row also proves the student exists.
//
// The store constraints (unique membership per student, unique check-in per
// student per day) remain the source of truth: if both racing requests pass
// their checks anyway, the loser fails at commit with a duplicate-key error.
// That one case is retried once with fresh state; a second failure surfaces
// as ErrStoreConflict.
func Serialized(ctx context.Context, db *gorm.DB, studentID string, fn func(tx *gorm.DB, student *models.Student) error) error {
	run := func() error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var student models.Student
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", studentID).
				First(&student).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrStudentNotFound
				}
				return fmt.Errorf("failed to lock student row: %w", err)
			}
			return fn(tx, &student)
		})
	}

	return retryOnce(run)
}

// retryOnce re-runs a policy transaction a single time after a commit-time
// conflict, so a benign race stays invisible to the caller. Any second
// conflict surfaces wrapped in ErrStoreConflict; every other error passes
// through untouched.
func retryOnce(run func() error) error {
	err := run()
	if !IsStoreConflict(err) {
		return err
	}

	metrics.StoreConflictRetriesTotal.Inc()
	if err := run(); err != nil {
		if IsStoreConflict(err) {
			return fmt.Errorf("%w: %v", ErrStoreConflict, err)
		}
		return err
	}
	return nil
}

// IsStoreConflict reports whether err is a commit-time concurrency failure.
func IsStoreConflict(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrStoreConflict)
}
