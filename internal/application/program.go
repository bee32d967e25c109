package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"programhub/internal/domain"
	"programhub/internal/domain/entities"
	"programhub/internal/ports/input"
	"programhub/internal/ports/output"
)

var _ input.ProgramUseCase = (*ProgramService)(nil)

type ProgramService struct {
	programRepo output.ProgramRepository
	clock       output.Clock
}

func NewProgramService(programRepo output.ProgramRepository, clock output.Clock) *ProgramService {
	return &ProgramService{
		programRepo: programRepo,
		clock:       clock,
	}
}

// CreateProgram builds a program owned by createdBy and persists it. The
// initial status is derived from the clock against the schedule window.
func (s *ProgramService) CreateProgram(ctx context.Context, createdBy string, in entities.ProgramInput) (*entities.Program, error) {
	program, err := entities.NewProgram(uuid.NewString(), createdBy, in, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.programRepo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	return program, nil
}

func (s *ProgramService) GetProgram(ctx context.Context, id string) (*entities.Program, error) {
	return s.programRepo.FindByID(ctx, id)
}

func (s *ProgramService) GetProgramWithCreator(ctx context.Context, id string) (*entities.ProgramWithCreator, error) {
	return s.programRepo.FindByIDWithCreator(ctx, id)
}

func (s *ProgramService) ListPrograms(ctx context.Context, filters output.ProgramFilters) ([]entities.Program, error) {
	return s.programRepo.FindAll(ctx, filters)
}

func (s *ProgramService) ListProgramsByCreator(ctx context.Context, userID string) ([]entities.Program, error) {
	return s.programRepo.FindByCreator(ctx, userID)
}

func (s *ProgramService) CountPrograms(ctx context.Context, filters output.ProgramFilters) (int64, error) {
	return s.programRepo.Count(ctx, filters)
}

// UpdateProgram replaces the editable attributes. Owner-only.
func (s *ProgramService) UpdateProgram(ctx context.Context, id, userID string, in entities.ProgramInput) (*entities.Program, error) {
	program, err := s.ownedProgram(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := program.Update(in, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, fmt.Errorf("update program: %w", err)
	}
	return program, nil
}

// DeleteProgram removes the program. Owner-only.
func (s *ProgramService) DeleteProgram(ctx context.Context, id, userID string) error {
	if _, err := s.ownedProgram(ctx, id, userID); err != nil {
		return err
	}
	if err := s.programRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}

// StartProgram transitions upcoming → active. Owner-only.
func (s *ProgramService) StartProgram(ctx context.Context, id, userID string) (*entities.Program, error) {
	return s.transition(ctx, id, userID, (*entities.Program).Start)
}

// CompleteProgram transitions active → completed. Owner-only.
func (s *ProgramService) CompleteProgram(ctx context.Context, id, userID string) (*entities.Program, error) {
	return s.transition(ctx, id, userID, (*entities.Program).Complete)
}

// CancelProgram aborts an upcoming or active program. Owner-only.
func (s *ProgramService) CancelProgram(ctx context.Context, id, userID string) (*entities.Program, error) {
	return s.transition(ctx, id, userID, (*entities.Program).Cancel)
}

// FeatureProgram sets or clears the featured flag. Owner-only.
func (s *ProgramService) FeatureProgram(ctx context.Context, id, userID string, featured bool) (*entities.Program, error) {
	if featured {
		return s.transition(ctx, id, userID, (*entities.Program).Feature)
	}
	return s.transition(ctx, id, userID, (*entities.Program).Unfeature)
}

func (s *ProgramService) transition(ctx context.Context, id, userID string, apply func(*entities.Program, time.Time) error) (*entities.Program, error) {
	program, err := s.ownedProgram(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := apply(program, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, fmt.Errorf("update program: %w", err)
	}
	return program, nil
}

func (s *ProgramService) ownedProgram(ctx context.Context, id, userID string) (*entities.Program, error) {
	program, err := s.programRepo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, fmt.Errorf("find program: %w", err)
	}
	if program.CreatedBy != userID {
		return nil, domain.ErrNotProgramOwner
	}
	return program, nil
}
