package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"programhub/internal/domain"
	"programhub/internal/ports/output"
)

var _ output.AdmissionAccounting = (*AdmissionLedger)(nil)

// AdmissionLedger maintains the programs.participants counter with
// conditional writes, so two near-capacity enrollments racing each other
// cannot overshoot max_participants even though the use case's admission
// check is not transactional with the enrollment insert.
type AdmissionLedger struct {
	pool *pgxpool.Pool
}

func NewAdmissionLedger(pool *pgxpool.Pool) *AdmissionLedger {
	return &AdmissionLedger{pool: pool}
}

func (l *AdmissionLedger) RecordEnrollment(ctx context.Context, programID string) error {
	tag, err := l.pool.Exec(ctx, `
		UPDATE programs
		SET participants = participants + 1, updated_at = $2
		WHERE id = $1
		  AND (max_participants IS NULL OR participants < max_participants)`,
		programID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("record enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		exists, err := programExists(ctx, l.pool, programID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrProgramNotFound
		}
		return domain.ErrProgramFull
	}
	return nil
}

func (l *AdmissionLedger) ReleaseEnrollment(ctx context.Context, programID string) error {
	tag, err := l.pool.Exec(ctx, `
		UPDATE programs
		SET participants = GREATEST(participants - 1, 0), updated_at = $2
		WHERE id = $1`,
		programID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("release enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProgramNotFound
	}
	return nil
}

func programExists(ctx context.Context, pool *pgxpool.Pool, id string) (bool, error) {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM programs WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("program exists: %w", err)
	}
	return exists, nil
}
