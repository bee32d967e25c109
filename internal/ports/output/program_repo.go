package output

import (
	"context"

	"programhub/internal/domain"
	"programhub/internal/domain/entities"
)

// ProgramFilters narrows program listings. Zero values mean "no filter".
type ProgramFilters struct {
	Type      domain.ProgramType
	Status    domain.ProgramStatus
	Skills    []string // array containment: program must carry all of these
	Featured  *bool
	Search    string // substring over title and description
	CreatedBy string
}

type ProgramRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Program, error)
	FindByIDWithCreator(ctx context.Context, id string) (*entities.ProgramWithCreator, error)
	FindAll(ctx context.Context, filters ProgramFilters) ([]entities.Program, error)
	FindByCreator(ctx context.Context, userID string) ([]entities.Program, error)
	Create(ctx context.Context, program *entities.Program) error
	Update(ctx context.Context, program *entities.Program) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context, filters ProgramFilters) (int64, error)
}
