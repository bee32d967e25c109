package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"programhub/internal/domain"
	"programhub/internal/domain/entities"
	"programhub/internal/ports/output"
)

var _ output.EnrollmentRepository = (*EnrollmentRepository)(nil)

// EnrollmentRepository implements output.EnrollmentRepository on
// PostgreSQL via pgx. A partial unique index on (program_id, user_id)
// WHERE status = 'enrolled' backs the one-active-enrollment invariant
// that the use-case layer cannot enforce atomically.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

const enrollmentColumns = `id, program_id, user_id, status, enrolled_at, completed_at,
	rating, feedback, created_at, updated_at`

func scanEnrollment(row pgx.Row) (*entities.Enrollment, error) {
	var (
		e           entities.Enrollment
		completedAt pgtype.Timestamptz
		rating      pgtype.Int4
		feedback    pgtype.Text
	)
	err := row.Scan(
		&e.ID, &e.ProgramID, &e.UserID, &e.Status, &e.EnrolledAt, &completedAt,
		&rating, &feedback, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.CompletedAt = pgtypeTimestamptzToTime(completedAt)
	e.Rating = pgtypeInt4ToInt(rating)
	e.Feedback = pgtypeTextToString(feedback)
	return &e, nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *entities.Enrollment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO program_enrollments (`+enrollmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		enrollment.ID, enrollment.ProgramID, enrollment.UserID, enrollment.Status,
		enrollment.EnrolledAt, timeToPgtypeTimestamptz(enrollment.CompletedAt),
		intToPgtypeInt4(enrollment.Rating), stringToPgtypeText(enrollment.Feedback),
		enrollment.CreatedAt, enrollment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*entities.Enrollment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+enrollmentColumns+` FROM program_enrollments WHERE id = $1`, id)
	e, err := scanEnrollment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("get enrollment by id: %w", err)
	}
	return e, nil
}

func (r *EnrollmentRepository) FindByIDWithDetails(ctx context.Context, id string) (*entities.EnrollmentWithDetails, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	programRepo := ProgramRepository{pool: r.pool}
	program, err := programRepo.FindByID(ctx, e.ProgramID)
	if err != nil {
		return nil, err
	}
	var name pgtype.Text
	err = r.pool.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, e.UserID).Scan(&name)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("get enrollment user: %w", err)
	}
	return &entities.EnrollmentWithDetails{
		Enrollment: *e,
		Program:    *program,
		User:       entities.UserRef{ID: e.UserID, Name: pgtypeTextToString(name)},
	}, nil
}

func enrollmentFilterClauses(filters output.EnrollmentFilters) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}
	if filters.ProgramID != "" {
		add("program_id = $%d", filters.ProgramID)
	}
	if filters.UserID != "" {
		add("user_id = $%d", filters.UserID)
	}
	if filters.Status != "" {
		add("status = $%d", filters.Status)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *EnrollmentRepository) FindAll(ctx context.Context, filters output.EnrollmentFilters) ([]entities.Enrollment, error) {
	where, args := enrollmentFilterClauses(filters)
	rows, err := r.pool.Query(ctx, `SELECT `+enrollmentColumns+` FROM program_enrollments`+where+` ORDER BY enrolled_at`, args...)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()

	var out []entities.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *EnrollmentRepository) FindByProgram(ctx context.Context, programID string) ([]entities.Enrollment, error) {
	return r.FindAll(ctx, output.EnrollmentFilters{ProgramID: programID})
}

func (r *EnrollmentRepository) FindByUser(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	return r.FindAll(ctx, output.EnrollmentFilters{UserID: userID})
}

func (r *EnrollmentRepository) FindByProgramAndUser(ctx context.Context, programID, userID string) (*entities.Enrollment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+enrollmentColumns+` FROM program_enrollments
		WHERE program_id = $1 AND user_id = $2`, programID, userID)
	e, err := scanEnrollment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("get enrollment by program and user: %w", err)
	}
	return e, nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *entities.Enrollment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE program_enrollments SET
			status = $2, completed_at = $3, rating = $4, feedback = $5, updated_at = $6
		WHERE id = $1`,
		enrollment.ID, enrollment.Status, timeToPgtypeTimestamptz(enrollment.CompletedAt),
		intToPgtypeInt4(enrollment.Rating), stringToPgtypeText(enrollment.Feedback),
		enrollment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update enrollment: %w", err)
	}
	return nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM program_enrollments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}

func (r *EnrollmentRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM program_enrollments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("enrollment exists: %w", err)
	}
	return exists, nil
}

func (r *EnrollmentRepository) IsUserEnrolled(ctx context.Context, programID, userID string) (bool, error) {
	var enrolled bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM program_enrollments
			WHERE program_id = $1 AND user_id = $2 AND status = 'enrolled'
		)`, programID, userID).Scan(&enrolled)
	if err != nil {
		return false, fmt.Errorf("is user enrolled: %w", err)
	}
	return enrolled, nil
}

func (r *EnrollmentRepository) Count(ctx context.Context, filters output.EnrollmentFilters) (int64, error) {
	where, args := enrollmentFilterClauses(filters)
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM program_enrollments`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return count, nil
}
