package entities

import (
	"strings"
	"time"

	"programhub/internal/domain"
)

// Program is a course/workshop/bootcamp offering. It owns its lifecycle
// status and the admission predicate consulted when users enroll.
//
// Transition methods stage the change on a copy, validate, and only then
// commit to the receiver, so a failed transition never leaves a
// half-mutated program behind.
type Program struct {
	ID          string
	Title       string
	Description string
	Type        domain.ProgramType
	Instructor  string
	Duration    string
	Location    string
	Skills      []string
	StartDate   time.Time
	EndDate     time.Time

	Participants    int
	MaxParticipants int // 0 = uncapped

	Status   domain.ProgramStatus
	Featured bool
	Price    float64 // presentation only
	ImageURL string  // presentation only

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProgramInput carries the caller-supplied attributes for creating or
// replacing a program's descriptive fields.
type ProgramInput struct {
	Title           string
	Description     string
	Type            domain.ProgramType
	Instructor      string
	Duration        string
	Location        string
	Skills          []string
	StartDate       time.Time
	EndDate         time.Time
	MaxParticipants int
	Featured        bool
	Price           float64
	ImageURL        string
}

// NewProgram builds a program owned by createdBy. The initial status is
// derived from now against the start/end window: before the window it is
// upcoming, inside it active, past it completed.
func NewProgram(id, createdBy string, in ProgramInput, now time.Time) (*Program, error) {
	p := &Program{
		ID:              id,
		Title:           in.Title,
		Description:     in.Description,
		Type:            in.Type,
		Instructor:      in.Instructor,
		Duration:        in.Duration,
		Location:        in.Location,
		Skills:          in.Skills,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		MaxParticipants: in.MaxParticipants,
		Status:          statusForWindow(now, in.StartDate, in.EndDate),
		Featured:        in.Featured,
		Price:           in.Price,
		ImageURL:        in.ImageURL,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func statusForWindow(now, start, end time.Time) domain.ProgramStatus {
	switch {
	case now.Before(start):
		return domain.ProgramUpcoming
	case now.After(end):
		return domain.ProgramCompleted
	default:
		return domain.ProgramActive
	}
}

// Start moves an upcoming program to active.
func (p *Program) Start(now time.Time) error {
	if p.Status != domain.ProgramUpcoming {
		return domain.InvalidState("program_start_not_upcoming", "Only upcoming programs can be started")
	}
	next := *p
	next.Status = domain.ProgramActive
	next.UpdatedAt = now
	return p.commit(&next)
}

// Complete moves an active program to completed.
func (p *Program) Complete(now time.Time) error {
	if p.Status != domain.ProgramActive {
		return domain.InvalidState("program_complete_not_active", "Only active programs can be completed")
	}
	next := *p
	next.Status = domain.ProgramCompleted
	next.UpdatedAt = now
	return p.commit(&next)
}

// Cancel aborts an upcoming or active program. Completed and cancelled
// programs are terminal.
func (p *Program) Cancel(now time.Time) error {
	if p.Status != domain.ProgramUpcoming && p.Status != domain.ProgramActive {
		return domain.InvalidState("program_cancel_terminal", "Completed or cancelled programs cannot be cancelled")
	}
	next := *p
	next.Status = domain.ProgramCancelled
	next.UpdatedAt = now
	return p.commit(&next)
}

// Feature marks the program as featured. Status-independent.
func (p *Program) Feature(now time.Time) error {
	next := *p
	next.Featured = true
	next.UpdatedAt = now
	return p.commit(&next)
}

// Unfeature clears the featured flag. Status-independent.
func (p *Program) Unfeature(now time.Time) error {
	next := *p
	next.Featured = false
	next.UpdatedAt = now
	return p.commit(&next)
}

// IncrementParticipants advances the participant counter by one. The
// counter is owned by the admission-accounting collaborator; the
// enrollment use case never calls this directly.
func (p *Program) IncrementParticipants(now time.Time) error {
	next := *p
	next.Participants++
	next.UpdatedAt = now
	return p.commit(&next)
}

// DecrementParticipants lowers the counter by one, flooring at zero.
func (p *Program) DecrementParticipants(now time.Time) error {
	next := *p
	if next.Participants > 0 {
		next.Participants--
	}
	next.UpdatedAt = now
	return p.commit(&next)
}

// Update replaces the caller-editable attributes and re-validates.
func (p *Program) Update(in ProgramInput, now time.Time) error {
	next := *p
	next.Title = in.Title
	next.Description = in.Description
	next.Type = in.Type
	next.Instructor = in.Instructor
	next.Duration = in.Duration
	next.Location = in.Location
	next.Skills = in.Skills
	next.StartDate = in.StartDate
	next.EndDate = in.EndDate
	next.MaxParticipants = in.MaxParticipants
	next.Featured = in.Featured
	next.Price = in.Price
	next.ImageURL = in.ImageURL
	next.UpdatedAt = now
	return p.commit(&next)
}

// IsAcceptingEnrollments is the admission predicate: the program must be
// upcoming, not full, and its start date must still be in the future.
func (p *Program) IsAcceptingEnrollments(now time.Time) bool {
	return p.Status == domain.ProgramUpcoming && !p.IsFull() && now.Before(p.StartDate)
}

// IsFull reports whether a capped program has reached capacity.
func (p *Program) IsFull() bool {
	return p.MaxParticipants > 0 && p.Participants >= p.MaxParticipants
}

// HasStarted reports whether the program's start has passed, either by
// status or by wall clock. A program whose status lags behind its start
// date (nobody called Start yet) still counts as started.
func (p *Program) HasStarted(now time.Time) bool {
	if p.Status == domain.ProgramActive || p.Status == domain.ProgramCompleted {
		return true
	}
	return !now.Before(p.StartDate)
}

func (p *Program) commit(next *Program) error {
	if err := next.Validate(); err != nil {
		return err
	}
	*p = *next
	return nil
}

// Validate checks every program invariant. Mutation methods run it before
// committing, so callers never observe an invalid program.
func (p *Program) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return domain.Validation("program_id_required", "program id is required")
	}
	if l := len(p.Title); l < 5 || l > 255 {
		return domain.Validation("program_title_length", "title must be between 5 and 255 characters")
	}
	if len(p.Description) < 20 {
		return domain.Validation("program_description_length", "description must be at least 20 characters")
	}
	if !domain.ValidProgramTypes[p.Type] {
		return domain.Validation("program_type_invalid", "unknown program type")
	}
	if strings.TrimSpace(p.Instructor) == "" {
		return domain.Validation("program_instructor_required", "instructor is required")
	}
	if strings.TrimSpace(p.Duration) == "" {
		return domain.Validation("program_duration_required", "duration is required")
	}
	if p.EndDate.Before(p.StartDate) {
		return domain.Validation("program_dates_order", "start date must not be after end date")
	}
	if p.Participants < 0 {
		return domain.Validation("program_participants_negative", "participants cannot be negative")
	}
	if p.MaxParticipants < 0 {
		return domain.Validation("program_max_participants_invalid", "max participants must be positive when set")
	}
	if p.MaxParticipants > 0 && p.Participants > p.MaxParticipants {
		return domain.Validation("program_over_capacity", "participants cannot exceed max participants")
	}
	if !domain.ValidProgramStatuses[p.Status] {
		return domain.Validation("program_status_invalid", "unknown program status")
	}
	if strings.TrimSpace(p.CreatedBy) == "" {
		return domain.Validation("program_created_by_required", "program owner is required")
	}
	if p.UpdatedAt.Before(p.CreatedAt) {
		return domain.Validation("program_timestamps_order", "updated at cannot precede created at")
	}
	return nil
}
