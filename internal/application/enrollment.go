package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"programhub/internal/domain"
	"programhub/internal/domain/entities"
	"programhub/internal/ports/input"
	"programhub/internal/ports/output"
)

var _ input.EnrollmentUseCase = (*EnrollmentService)(nil)

type EnrollmentService struct {
	enrollmentRepo output.EnrollmentRepository
	programRepo    output.ProgramRepository
	clock          output.Clock
}

func NewEnrollmentService(
	enrollmentRepo output.EnrollmentRepository,
	programRepo output.ProgramRepository,
	clock output.Clock,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		programRepo:    programRepo,
		clock:          clock,
	}
}

// EnrollInProgram admits userID into programID.
//
// Admission denial is disambiguated in priority order: full beats
// started beats the generic "not accepting" reason. An existing active
// enrollment is returned unchanged, making retries idempotent; a dropped
// or rejected one is reactivated; a completed one is refused. At most
// one write to the enrollment store happens per invocation. The
// participant counter is never touched here; maintaining it is the
// admission accounting collaborator's job (see output.AdmissionAccounting).
func (s *EnrollmentService) EnrollInProgram(ctx context.Context, programID, userID string) (*entities.Enrollment, bool, error) {
	program, err := s.programRepo.FindByID(ctx, programID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, false, domain.ErrProgramNotFound
		}
		return nil, false, fmt.Errorf("find program: %w", err)
	}

	now := s.clock.Now()
	if !program.IsAcceptingEnrollments(now) {
		switch {
		case program.IsFull():
			return nil, false, domain.ErrProgramFull
		case program.HasStarted(now):
			return nil, false, domain.ErrProgramStarted
		default:
			return nil, false, domain.ErrProgramNotAccepting
		}
	}

	existing, err := s.enrollmentRepo.FindByProgramAndUser(ctx, programID, userID)
	if err != nil && !domain.IsNotFound(err) {
		return nil, false, fmt.Errorf("find enrollment: %w", err)
	}
	if existing == nil {
		enrollment, err := entities.NewEnrollment(uuid.NewString(), programID, userID, now)
		if err != nil {
			return nil, false, err
		}
		if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
			return nil, false, fmt.Errorf("create enrollment: %w", err)
		}
		return enrollment, true, nil
	}

	switch existing.Status {
	case domain.StatusEnrolled:
		return existing, false, nil
	case domain.StatusCompleted:
		return nil, false, domain.ErrAlreadyCompleted
	}

	if err := existing.Reenroll(now); err != nil {
		return nil, false, err
	}
	if err := s.enrollmentRepo.Update(ctx, existing); err != nil {
		return nil, false, fmt.Errorf("update enrollment: %w", err)
	}
	return existing, true, nil
}

// CancelEnrollment hard-deletes the enrollment after verifying ownership.
// Deletion is status-independent: a completed enrollment can be removed
// by its owner too (the upstream behavior is preserved, though it may be
// an oversight rather than intent).
func (s *EnrollmentService) CancelEnrollment(ctx context.Context, enrollmentID, userID string) (bool, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, enrollmentID)
	if err != nil {
		if domain.IsNotFound(err) {
			return false, domain.ErrEnrollmentNotFound
		}
		return false, fmt.Errorf("find enrollment: %w", err)
	}
	if enrollment.UserID != userID {
		return false, domain.ErrNotEnrollmentOwner
	}
	wasActive := enrollment.Status == domain.StatusEnrolled
	if err := s.enrollmentRepo.Delete(ctx, enrollment.ID); err != nil {
		return false, fmt.Errorf("delete enrollment: %w", err)
	}
	return wasActive, nil
}

func (s *EnrollmentService) GetEnrollment(ctx context.Context, id string) (*entities.Enrollment, error) {
	return s.enrollmentRepo.FindByID(ctx, id)
}

func (s *EnrollmentService) GetEnrollmentWithDetails(ctx context.Context, id string) (*entities.EnrollmentWithDetails, error) {
	return s.enrollmentRepo.FindByIDWithDetails(ctx, id)
}

// ListByProgram returns a program's enrollments; only the program owner
// may see them.
func (s *EnrollmentService) ListByProgram(ctx context.Context, programID, requesterID string) ([]entities.Enrollment, error) {
	program, err := s.programRepo.FindByID(ctx, programID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, fmt.Errorf("find program: %w", err)
	}
	if program.CreatedBy != requesterID {
		return nil, domain.ErrNotProgramOwner
	}
	return s.enrollmentRepo.FindByProgram(ctx, programID)
}

func (s *EnrollmentService) ListByUser(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	return s.enrollmentRepo.FindByUser(ctx, userID)
}

func (s *EnrollmentService) IsUserEnrolled(ctx context.Context, programID, userID string) (bool, error) {
	return s.enrollmentRepo.IsUserEnrolled(ctx, programID, userID)
}

// CompleteEnrollment marks an enrollment finished. Program-owner action.
func (s *EnrollmentService) CompleteEnrollment(ctx context.Context, enrollmentID, actorID string, rating int, feedback string) (*entities.Enrollment, error) {
	enrollment, program, err := s.loadWithProgram(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if program.CreatedBy != actorID {
		return nil, domain.ErrNotProgramOwner
	}
	if err := enrollment.Complete(rating, feedback, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return enrollment, nil
}

// DropEnrollment records that the enrolled user left. Enrollee action.
func (s *EnrollmentService) DropEnrollment(ctx context.Context, enrollmentID, userID string) (*entities.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, enrollmentID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	if enrollment.UserID != userID {
		return nil, domain.ErrNotEnrollmentOwner
	}
	if err := enrollment.Drop(s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return enrollment, nil
}

// RejectEnrollment removes a participant administratively. Program-owner
// action; mechanics are identical to Drop.
func (s *EnrollmentService) RejectEnrollment(ctx context.Context, enrollmentID, actorID string) (*entities.Enrollment, error) {
	enrollment, program, err := s.loadWithProgram(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if program.CreatedBy != actorID {
		return nil, domain.ErrNotProgramOwner
	}
	if err := enrollment.Reject(s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return enrollment, nil
}

// UpdateFeedback revises rating/feedback on a completed enrollment.
// Enrollee action.
func (s *EnrollmentService) UpdateFeedback(ctx context.Context, enrollmentID, userID string, rating int, feedback string) (*entities.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, enrollmentID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	if enrollment.UserID != userID {
		return nil, domain.ErrNotEnrollmentOwner
	}
	if err := enrollment.UpdateFeedback(rating, feedback, s.clock.Now()); err != nil {
		return nil, err
	}
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *EnrollmentService) loadWithProgram(ctx context.Context, enrollmentID string) (*entities.Enrollment, *entities.Program, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, enrollmentID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil, domain.ErrEnrollmentNotFound
		}
		return nil, nil, fmt.Errorf("find enrollment: %w", err)
	}
	program, err := s.programRepo.FindByID(ctx, enrollment.ProgramID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil, domain.ErrProgramNotFound
		}
		return nil, nil, fmt.Errorf("find program: %w", err)
	}
	return enrollment, program, nil
}
