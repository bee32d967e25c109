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

var _ output.ProgramRepository = (*ProgramRepository)(nil)

// ProgramRepository implements output.ProgramRepository on PostgreSQL via pgx.
type ProgramRepository struct {
	pool *pgxpool.Pool
}

func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{pool: pool}
}

const programColumns = `id, title, description, type, instructor, duration, location, skills,
	start_date, end_date, participants, max_participants, status, featured, price, image_url,
	created_by, created_at, updated_at`

func scanProgram(row pgx.Row) (*entities.Program, error) {
	var (
		p               entities.Program
		location        pgtype.Text
		maxParticipants pgtype.Int4
		imageURL        pgtype.Text
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Type, &p.Instructor, &p.Duration, &location, &p.Skills,
		&p.StartDate, &p.EndDate, &p.Participants, &maxParticipants, &p.Status, &p.Featured,
		&p.Price, &imageURL, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Location = pgtypeTextToString(location)
	p.MaxParticipants = pgtypeInt4ToInt(maxParticipants)
	p.ImageURL = pgtypeTextToString(imageURL)
	return &p, nil
}

func (r *ProgramRepository) Create(ctx context.Context, program *entities.Program) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO programs (`+programColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		program.ID, program.Title, program.Description, program.Type, program.Instructor,
		program.Duration, stringToPgtypeText(program.Location), program.Skills,
		program.StartDate, program.EndDate, program.Participants,
		intToPgtypeInt4(program.MaxParticipants), program.Status, program.Featured,
		program.Price, stringToPgtypeText(program.ImageURL),
		program.CreatedBy, program.CreatedAt, program.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	return nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id string) (*entities.Program, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+programColumns+` FROM programs WHERE id = $1`, id)
	p, err := scanProgram(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, fmt.Errorf("get program by id: %w", err)
	}
	return p, nil
}

func (r *ProgramRepository) FindByIDWithCreator(ctx context.Context, id string) (*entities.ProgramWithCreator, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.title, p.description, p.type, p.instructor, p.duration, p.location, p.skills,
			p.start_date, p.end_date, p.participants, p.max_participants, p.status, p.featured,
			p.price, p.image_url, p.created_by, p.created_at, p.updated_at,
			COALESCE(u.name, '')
		FROM programs p
		LEFT JOIN users u ON u.id = p.created_by
		WHERE p.id = $1`, id)

	var (
		p               entities.Program
		location        pgtype.Text
		maxParticipants pgtype.Int4
		imageURL        pgtype.Text
		creatorName     string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Type, &p.Instructor, &p.Duration, &location, &p.Skills,
		&p.StartDate, &p.EndDate, &p.Participants, &maxParticipants, &p.Status, &p.Featured,
		&p.Price, &imageURL, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		&creatorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, fmt.Errorf("get program with creator: %w", err)
	}
	p.Location = pgtypeTextToString(location)
	p.MaxParticipants = pgtypeInt4ToInt(maxParticipants)
	p.ImageURL = pgtypeTextToString(imageURL)
	return &entities.ProgramWithCreator{
		Program: p,
		Creator: entities.UserRef{ID: p.CreatedBy, Name: creatorName},
	}, nil
}

// programFilterClauses builds the WHERE fragment and argument list for
// the given filters, starting argument numbering at 1.
func programFilterClauses(filters output.ProgramFilters) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(clause string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}
	if filters.Type != "" {
		add("type = $%d", filters.Type)
	}
	if filters.Status != "" {
		add("status = $%d", filters.Status)
	}
	if len(filters.Skills) > 0 {
		add("skills @> $%d", filters.Skills)
	}
	if filters.Featured != nil {
		add("featured = $%d", *filters.Featured)
	}
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if filters.CreatedBy != "" {
		add("created_by = $%d", filters.CreatedBy)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *ProgramRepository) FindAll(ctx context.Context, filters output.ProgramFilters) ([]entities.Program, error) {
	where, args := programFilterClauses(filters)
	rows, err := r.pool.Query(ctx, `SELECT `+programColumns+` FROM programs`+where+` ORDER BY start_date`, args...)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var out []entities.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProgramRepository) FindByCreator(ctx context.Context, userID string) ([]entities.Program, error) {
	return r.FindAll(ctx, output.ProgramFilters{CreatedBy: userID})
}

func (r *ProgramRepository) Update(ctx context.Context, program *entities.Program) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE programs SET
			title = $2, description = $3, type = $4, instructor = $5, duration = $6,
			location = $7, skills = $8, start_date = $9, end_date = $10, participants = $11,
			max_participants = $12, status = $13, featured = $14, price = $15, image_url = $16,
			updated_at = $17
		WHERE id = $1`,
		program.ID, program.Title, program.Description, program.Type, program.Instructor,
		program.Duration, stringToPgtypeText(program.Location), program.Skills,
		program.StartDate, program.EndDate, program.Participants,
		intToPgtypeInt4(program.MaxParticipants), program.Status, program.Featured,
		program.Price, stringToPgtypeText(program.ImageURL), program.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	return nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

func (r *ProgramRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM programs WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("program exists: %w", err)
	}
	return exists, nil
}

func (r *ProgramRepository) Count(ctx context.Context, filters output.ProgramFilters) (int64, error) {
	where, args := programFilterClauses(filters)
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM programs`+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count programs: %w", err)
	}
	return count, nil
}
