package input

import (
	"context"

	"programhub/internal/domain/entities"
)

type EnrollmentUseCase interface {
	// EnrollInProgram admits userID into the program. The bool reports
	// whether a write happened (new enrollment or re-enrollment); the
	// idempotent path returns the existing active enrollment with false.
	EnrollInProgram(ctx context.Context, programID, userID string) (*entities.Enrollment, bool, error)
	// CancelEnrollment deletes the enrollment after an ownership check.
	// The bool reports whether the deleted enrollment was still active.
	CancelEnrollment(ctx context.Context, enrollmentID, userID string) (bool, error)

	GetEnrollment(ctx context.Context, id string) (*entities.Enrollment, error)
	GetEnrollmentWithDetails(ctx context.Context, id string) (*entities.EnrollmentWithDetails, error)
	ListByProgram(ctx context.Context, programID, requesterID string) ([]entities.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Enrollment, error)
	IsUserEnrolled(ctx context.Context, programID, userID string) (bool, error)

	CompleteEnrollment(ctx context.Context, enrollmentID, actorID string, rating int, feedback string) (*entities.Enrollment, error)
	DropEnrollment(ctx context.Context, enrollmentID, userID string) (*entities.Enrollment, error)
	RejectEnrollment(ctx context.Context, enrollmentID, actorID string) (*entities.Enrollment, error)
	UpdateFeedback(ctx context.Context, enrollmentID, userID string, rating int, feedback string) (*entities.Enrollment, error)
}
