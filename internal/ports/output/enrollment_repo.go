package output

import (
	"context"

	"programhub/internal/domain"
	"programhub/internal/domain/entities"
)

// EnrollmentFilters narrows enrollment listings. Zero values mean "no filter".
type EnrollmentFilters struct {
	ProgramID string
	UserID    string
	Status    domain.EnrollmentStatus
}

type EnrollmentRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Enrollment, error)
	FindByIDWithDetails(ctx context.Context, id string) (*entities.EnrollmentWithDetails, error)
	FindAll(ctx context.Context, filters EnrollmentFilters) ([]entities.Enrollment, error)
	FindByProgram(ctx context.Context, programID string) ([]entities.Enrollment, error)
	FindByUser(ctx context.Context, userID string) ([]entities.Enrollment, error)
	FindByProgramAndUser(ctx context.Context, programID, userID string) (*entities.Enrollment, error)
	Create(ctx context.Context, enrollment *entities.Enrollment) error
	Update(ctx context.Context, enrollment *entities.Enrollment) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	IsUserEnrolled(ctx context.Context, programID, userID string) (bool, error)
	Count(ctx context.Context, filters EnrollmentFilters) (int64, error)
}
