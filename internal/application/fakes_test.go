package application

import (
	"context"

	"programhub/internal/domain"
	"programhub/internal/domain/entities"
	"programhub/internal/ports/output"
)

// In-memory fakes for the repository ports. They store copies, so test
// assertions never observe aliased entity state.

type fakeProgramRepo struct {
	programs map[string]entities.Program
	updates  int
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{programs: make(map[string]entities.Program)}
}

func (r *fakeProgramRepo) FindByID(_ context.Context, id string) (*entities.Program, error) {
	p, ok := r.programs[id]
	if !ok {
		return nil, domain.ErrProgramNotFound
	}
	return &p, nil
}

func (r *fakeProgramRepo) FindByIDWithCreator(ctx context.Context, id string) (*entities.ProgramWithCreator, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entities.ProgramWithCreator{Program: *p, Creator: entities.UserRef{ID: p.CreatedBy}}, nil
}

func (r *fakeProgramRepo) FindAll(_ context.Context, filters output.ProgramFilters) ([]entities.Program, error) {
	var out []entities.Program
	for _, p := range r.programs {
		if filters.CreatedBy != "" && p.CreatedBy != filters.CreatedBy {
			continue
		}
		if filters.Status != "" && p.Status != filters.Status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProgramRepo) FindByCreator(ctx context.Context, userID string) ([]entities.Program, error) {
	return r.FindAll(ctx, output.ProgramFilters{CreatedBy: userID})
}

func (r *fakeProgramRepo) Create(_ context.Context, program *entities.Program) error {
	r.programs[program.ID] = *program
	return nil
}

func (r *fakeProgramRepo) Update(_ context.Context, program *entities.Program) error {
	r.programs[program.ID] = *program
	r.updates++
	return nil
}

func (r *fakeProgramRepo) Delete(_ context.Context, id string) error {
	delete(r.programs, id)
	return nil
}

func (r *fakeProgramRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.programs[id]
	return ok, nil
}

func (r *fakeProgramRepo) Count(ctx context.Context, filters output.ProgramFilters) (int64, error) {
	out, _ := r.FindAll(ctx, filters)
	return int64(len(out)), nil
}

type fakeEnrollmentRepo struct {
	enrollments map[string]entities.Enrollment
	creates     int
	updates     int
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[string]entities.Enrollment)}
}

func (r *fakeEnrollmentRepo) FindByID(_ context.Context, id string) (*entities.Enrollment, error) {
	e, ok := r.enrollments[id]
	if !ok {
		return nil, domain.ErrEnrollmentNotFound
	}
	return &e, nil
}

func (r *fakeEnrollmentRepo) FindByIDWithDetails(ctx context.Context, id string) (*entities.EnrollmentWithDetails, error) {
	e, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entities.EnrollmentWithDetails{Enrollment: *e, User: entities.UserRef{ID: e.UserID}}, nil
}

func (r *fakeEnrollmentRepo) FindAll(_ context.Context, filters output.EnrollmentFilters) ([]entities.Enrollment, error) {
	var out []entities.Enrollment
	for _, e := range r.enrollments {
		if filters.ProgramID != "" && e.ProgramID != filters.ProgramID {
			continue
		}
		if filters.UserID != "" && e.UserID != filters.UserID {
			continue
		}
		if filters.Status != "" && e.Status != filters.Status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) FindByProgram(ctx context.Context, programID string) ([]entities.Enrollment, error) {
	return r.FindAll(ctx, output.EnrollmentFilters{ProgramID: programID})
}

func (r *fakeEnrollmentRepo) FindByUser(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	return r.FindAll(ctx, output.EnrollmentFilters{UserID: userID})
}

func (r *fakeEnrollmentRepo) FindByProgramAndUser(_ context.Context, programID, userID string) (*entities.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.ProgramID == programID && e.UserID == userID {
			return &e, nil
		}
	}
	return nil, domain.ErrEnrollmentNotFound
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *entities.Enrollment) error {
	r.enrollments[enrollment.ID] = *enrollment
	r.creates++
	return nil
}

func (r *fakeEnrollmentRepo) Update(_ context.Context, enrollment *entities.Enrollment) error {
	r.enrollments[enrollment.ID] = *enrollment
	r.updates++
	return nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id string) error {
	delete(r.enrollments, id)
	return nil
}

func (r *fakeEnrollmentRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.enrollments[id]
	return ok, nil
}

func (r *fakeEnrollmentRepo) IsUserEnrolled(ctx context.Context, programID, userID string) (bool, error) {
	e, err := r.FindByProgramAndUser(ctx, programID, userID)
	if err != nil {
		return false, nil
	}
	return e.Status == domain.StatusEnrolled, nil
}

func (r *fakeEnrollmentRepo) Count(ctx context.Context, filters output.EnrollmentFilters) (int64, error) {
	out, _ := r.FindAll(ctx, filters)
	return int64(len(out)), nil
}
