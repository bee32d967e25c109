package input

import (
	"context"

	"programhub/internal/domain/entities"
	"programhub/internal/ports/output"
)

type ProgramUseCase interface {
	CreateProgram(ctx context.Context, createdBy string, in entities.ProgramInput) (*entities.Program, error)
	GetProgram(ctx context.Context, id string) (*entities.Program, error)
	GetProgramWithCreator(ctx context.Context, id string) (*entities.ProgramWithCreator, error)
	ListPrograms(ctx context.Context, filters output.ProgramFilters) ([]entities.Program, error)
	ListProgramsByCreator(ctx context.Context, userID string) ([]entities.Program, error)
	CountPrograms(ctx context.Context, filters output.ProgramFilters) (int64, error)
	UpdateProgram(ctx context.Context, id, userID string, in entities.ProgramInput) (*entities.Program, error)
	DeleteProgram(ctx context.Context, id, userID string) error
	StartProgram(ctx context.Context, id, userID string) (*entities.Program, error)
	CompleteProgram(ctx context.Context, id, userID string) (*entities.Program, error)
	CancelProgram(ctx context.Context, id, userID string) (*entities.Program, error)
	FeatureProgram(ctx context.Context, id, userID string, featured bool) (*entities.Program, error)
}
