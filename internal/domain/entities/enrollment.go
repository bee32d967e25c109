package entities

import (
	"strings"
	"time"

	"programhub/internal/domain"
)

// Enrollment represents one user's relationship to one program.
//
// enrolled is the only state with outgoing transitions to completed,
// dropped and rejected; dropped and rejected can return to enrolled via
// Reenroll. completed is absorbing.
type Enrollment struct {
	ID        string
	ProgramID string
	UserID    string

	Status domain.EnrollmentStatus

	EnrolledAt  time.Time
	CompletedAt time.Time // zero = not completed

	Rating   int    // 0 = not rated
	Feedback string // "" = none

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEnrollment creates an active enrollment of userID in programID.
func NewEnrollment(id, programID, userID string, now time.Time) (*Enrollment, error) {
	e := &Enrollment{
		ID:         id,
		ProgramID:  programID,
		UserID:     userID,
		Status:     domain.StatusEnrolled,
		EnrolledAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Complete marks the enrollment finished, stamping CompletedAt and
// optionally recording initial feedback (rating 0 and feedback "" are
// treated as absent).
func (e *Enrollment) Complete(rating int, feedback string, now time.Time) error {
	if e.Status != domain.StatusEnrolled {
		return domain.InvalidState("enrollment_complete_not_enrolled", "Only active enrollments can be completed")
	}
	next := *e
	next.Status = domain.StatusCompleted
	next.CompletedAt = now
	next.Rating = rating
	next.Feedback = feedback
	next.UpdatedAt = now
	return e.commit(&next)
}

// Drop records that the user left the program.
func (e *Enrollment) Drop(now time.Time) error {
	if e.Status != domain.StatusEnrolled {
		return domain.InvalidState("enrollment_drop_not_enrolled", "Only active enrollments can be dropped")
	}
	next := *e
	next.Status = domain.StatusDropped
	next.UpdatedAt = now
	return e.commit(&next)
}

// Reject records an administrative removal. Same mechanics as Drop; the
// distinction is who acted.
func (e *Enrollment) Reject(now time.Time) error {
	if e.Status != domain.StatusEnrolled {
		return domain.InvalidState("enrollment_reject_not_enrolled", "Only active enrollments can be rejected")
	}
	next := *e
	next.Status = domain.StatusRejected
	next.UpdatedAt = now
	return e.commit(&next)
}

// Reenroll reactivates a dropped or rejected enrollment. EnrolledAt is
// preserved from the original enrollment.
func (e *Enrollment) Reenroll(now time.Time) error {
	switch e.Status {
	case domain.StatusEnrolled:
		return domain.ErrAlreadyEnrolled
	case domain.StatusCompleted:
		return domain.ErrReenrollCompleted
	}
	next := *e
	next.Status = domain.StatusEnrolled
	next.UpdatedAt = now
	return e.commit(&next)
}

// SetRating records a 1-5 rating.
func (e *Enrollment) SetRating(rating int, now time.Time) error {
	if rating < 1 || rating > 5 {
		return domain.Validation("enrollment_rating_range", "rating must be between 1 and 5")
	}
	next := *e
	next.Rating = rating
	next.UpdatedAt = now
	return e.commit(&next)
}

// SetFeedback records free-text feedback.
func (e *Enrollment) SetFeedback(feedback string, now time.Time) error {
	if len(feedback) > maxFeedbackLen {
		return domain.Validation("enrollment_feedback_length", "feedback must be at most 2000 characters")
	}
	next := *e
	next.Feedback = feedback
	next.UpdatedAt = now
	return e.commit(&next)
}

// UpdateFeedback revises rating and/or feedback after completion. Zero
// values leave the existing attribute untouched.
func (e *Enrollment) UpdateFeedback(rating int, feedback string, now time.Time) error {
	if e.Status != domain.StatusCompleted {
		return domain.ErrFeedbackNotOpen
	}
	if rating != 0 && (rating < 1 || rating > 5) {
		return domain.Validation("enrollment_rating_range", "rating must be between 1 and 5")
	}
	next := *e
	if rating != 0 {
		next.Rating = rating
	}
	if feedback != "" {
		next.Feedback = feedback
	}
	next.UpdatedAt = now
	return e.commit(&next)
}

const maxFeedbackLen = 2000

func (e *Enrollment) commit(next *Enrollment) error {
	if err := next.Validate(); err != nil {
		return err
	}
	*e = *next
	return nil
}

// Validate checks every enrollment invariant.
func (e *Enrollment) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return domain.Validation("enrollment_id_required", "enrollment id is required")
	}
	if strings.TrimSpace(e.ProgramID) == "" {
		return domain.Validation("enrollment_program_required", "program id is required")
	}
	if strings.TrimSpace(e.UserID) == "" {
		return domain.Validation("enrollment_user_required", "user id is required")
	}
	if !domain.ValidEnrollmentStatuses[e.Status] {
		return domain.Validation("enrollment_status_invalid", "unknown enrollment status")
	}
	if e.Rating != 0 && (e.Rating < 1 || e.Rating > 5) {
		return domain.Validation("enrollment_rating_range", "rating must be between 1 and 5")
	}
	if len(e.Feedback) > maxFeedbackLen {
		return domain.Validation("enrollment_feedback_length", "feedback must be at most 2000 characters")
	}
	if e.Status == domain.StatusCompleted && e.CompletedAt.IsZero() {
		return domain.Validation("enrollment_completed_at_required", "completed enrollments must have a completion time")
	}
	if !e.CompletedAt.IsZero() && e.CompletedAt.Before(e.EnrolledAt) {
		return domain.Validation("enrollment_completed_at_order", "completion time cannot precede enrollment time")
	}
	if e.UpdatedAt.Before(e.CreatedAt) {
		return domain.Validation("enrollment_timestamps_order", "updated at cannot precede created at")
	}
	return nil
}
