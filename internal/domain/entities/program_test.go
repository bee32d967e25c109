package entities

import (
	"testing"
	"time"

	"programhub/internal/domain"
)

var (
	testNow   = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testStart = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2026, 4, 30, 17, 0, 0, 0, time.UTC)
)

func validProgramInput() ProgramInput {
	return ProgramInput{
		Title:           "Backend Engineering Bootcamp",
		Description:     "Twelve weeks of intensive backend engineering practice.",
		Type:            domain.TypeBootcamp,
		Instructor:      "Ada Lovelace",
		Duration:        "12 weeks",
		StartDate:       testStart,
		EndDate:         testEnd,
		MaxParticipants: 30,
	}
}

func mustProgram(t *testing.T) *Program {
	t.Helper()
	p, err := NewProgram("prog-1", "user-1", validProgramInput(), testNow)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	return p
}

func TestNewProgramDerivesStatus(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want domain.ProgramStatus
	}{
		{"before window", testStart.Add(-24 * time.Hour), domain.ProgramUpcoming},
		{"at start", testStart, domain.ProgramActive},
		{"inside window", testStart.Add(48 * time.Hour), domain.ProgramActive},
		{"at end", testEnd, domain.ProgramActive},
		{"after window", testEnd.Add(time.Hour), domain.ProgramCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProgram("prog-1", "user-1", validProgramInput(), tt.now)
			if err != nil {
				t.Fatalf("NewProgram: %v", err)
			}
			if p.Status != tt.want {
				t.Errorf("status = %s, want %s", p.Status, tt.want)
			}
		})
	}
}

func TestNewProgramValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProgramInput)
	}{
		{"title too short", func(in *ProgramInput) { in.Title = "Go" }},
		{"title too long", func(in *ProgramInput) {
			long := make([]byte, 256)
			for i := range long {
				long[i] = 'a'
			}
			in.Title = string(long)
		}},
		{"description too short", func(in *ProgramInput) { in.Description = "too short" }},
		{"unknown type", func(in *ProgramInput) { in.Type = "seminar" }},
		{"empty instructor", func(in *ProgramInput) { in.Instructor = "  " }},
		{"empty duration", func(in *ProgramInput) { in.Duration = "" }},
		{"end before start", func(in *ProgramInput) { in.EndDate = in.StartDate.Add(-time.Hour) }},
		{"negative capacity", func(in *ProgramInput) { in.MaxParticipants = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProgramInput()
			tt.mutate(&in)
			_, err := NewProgram("prog-1", "user-1", in, testNow)
			if !domain.IsValidation(err) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}

	t.Run("empty id", func(t *testing.T) {
		if _, err := NewProgram("", "user-1", validProgramInput(), testNow); !domain.IsValidation(err) {
			t.Errorf("err = %v, want validation error", err)
		}
	})
	t.Run("empty owner", func(t *testing.T) {
		if _, err := NewProgram("prog-1", "", validProgramInput(), testNow); !domain.IsValidation(err) {
			t.Errorf("err = %v, want validation error", err)
		}
	})
	t.Run("same-day window allowed", func(t *testing.T) {
		in := validProgramInput()
		in.EndDate = in.StartDate
		if _, err := NewProgram("prog-1", "user-1", in, testNow); err != nil {
			t.Errorf("NewProgram: %v", err)
		}
	})
}

func TestProgramTransitions(t *testing.T) {
	type transition struct {
		name  string
		apply func(*Program, time.Time) error
	}
	start := transition{"start", (*Program).Start}
	complete := transition{"complete", (*Program).Complete}
	cancel := transition{"cancel", (*Program).Cancel}

	tests := []struct {
		from    domain.ProgramStatus
		tr      transition
		want    domain.ProgramStatus
		wantErr bool
	}{
		{domain.ProgramUpcoming, start, domain.ProgramActive, false},
		{domain.ProgramActive, start, "", true},
		{domain.ProgramCompleted, start, "", true},
		{domain.ProgramCancelled, start, "", true},
		{domain.ProgramActive, complete, domain.ProgramCompleted, false},
		{domain.ProgramUpcoming, complete, "", true},
		{domain.ProgramCompleted, complete, "", true},
		{domain.ProgramCancelled, complete, "", true},
		{domain.ProgramUpcoming, cancel, domain.ProgramCancelled, false},
		{domain.ProgramActive, cancel, domain.ProgramCancelled, false},
		{domain.ProgramCompleted, cancel, "", true},
		{domain.ProgramCancelled, cancel, "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+tt.tr.name, func(t *testing.T) {
			p := mustProgram(t)
			p.Status = tt.from
			before := *p
			err := tt.tr.apply(p, testNow.Add(time.Minute))
			if tt.wantErr {
				if !domain.IsInvalidState(err) {
					t.Fatalf("err = %v, want invalid state", err)
				}
				if p.Status != before.Status || !p.UpdatedAt.Equal(before.UpdatedAt) {
					t.Errorf("failed transition mutated the program")
				}
				return
			}
			if err != nil {
				t.Fatalf("%s from %s: %v", tt.tr.name, tt.from, err)
			}
			if p.Status != tt.want {
				t.Errorf("status = %s, want %s", p.Status, tt.want)
			}
			if !p.UpdatedAt.After(before.UpdatedAt) {
				t.Errorf("UpdatedAt not advanced")
			}
		})
	}
}

func TestFeatureUnfeature(t *testing.T) {
	p := mustProgram(t)
	p.Status = domain.ProgramCompleted // status-independent

	before := p.UpdatedAt
	if err := p.Feature(testNow.Add(time.Minute)); err != nil {
		t.Fatalf("Feature: %v", err)
	}
	if !p.Featured || !p.UpdatedAt.After(before) {
		t.Errorf("Featured = %v, UpdatedAt advanced = %v", p.Featured, p.UpdatedAt.After(before))
	}
	if err := p.Unfeature(testNow.Add(2 * time.Minute)); err != nil {
		t.Fatalf("Unfeature: %v", err)
	}
	if p.Featured {
		t.Errorf("Featured still set after Unfeature")
	}
}

func TestParticipantCounter(t *testing.T) {
	p := mustProgram(t)
	p.MaxParticipants = 2

	if err := p.IncrementParticipants(testNow); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := p.IncrementParticipants(testNow); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if !p.IsFull() {
		t.Errorf("IsFull() = false at capacity")
	}

	// The ceiling holds: a third increment fails validation and leaves
	// the counter untouched.
	if err := p.IncrementParticipants(testNow); !domain.IsValidation(err) {
		t.Errorf("increment past capacity: err = %v, want validation error", err)
	}
	if p.Participants != 2 {
		t.Errorf("Participants = %d, want 2", p.Participants)
	}

	for i := 0; i < 3; i++ {
		if err := p.DecrementParticipants(testNow); err != nil {
			t.Fatalf("decrement: %v", err)
		}
	}
	if p.Participants != 0 {
		t.Errorf("Participants = %d, want 0 (decrement floors at zero)", p.Participants)
	}
}

func TestIsAcceptingEnrollments(t *testing.T) {
	beforeStart := testStart.Add(-time.Hour)
	afterStart := testStart.Add(time.Hour)

	tests := []struct {
		name   string
		mutate func(*Program)
		now    time.Time
		want   bool
	}{
		{"upcoming with room", func(p *Program) {}, beforeStart, true},
		{"uncapped", func(p *Program) { p.MaxParticipants = 0; p.Participants = 500 }, beforeStart, true},
		{"full", func(p *Program) { p.MaxParticipants = 1; p.Participants = 1 }, beforeStart, false},
		{"start date passed", func(p *Program) {}, afterStart, false},
		{"active", func(p *Program) { p.Status = domain.ProgramActive }, beforeStart, false},
		{"cancelled", func(p *Program) { p.Status = domain.ProgramCancelled }, beforeStart, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustProgram(t)
			tt.mutate(p)
			if got := p.IsAcceptingEnrollments(tt.now); got != tt.want {
				t.Errorf("IsAcceptingEnrollments = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasStarted(t *testing.T) {
	p := mustProgram(t)
	if p.HasStarted(testStart.Add(-time.Hour)) {
		t.Errorf("upcoming program before start reported as started")
	}
	// Status lags behind the clock: still counts as started.
	if !p.HasStarted(testStart) {
		t.Errorf("upcoming program past start date not reported as started")
	}
	p.Status = domain.ProgramActive
	if !p.HasStarted(testStart.Add(-time.Hour)) {
		t.Errorf("active program not reported as started")
	}
}

func TestUpdateRevalidates(t *testing.T) {
	p := mustProgram(t)
	in := validProgramInput()
	in.Description = "nope"
	before := *p
	if err := p.Update(in, testNow.Add(time.Minute)); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if p.Description != before.Description {
		t.Errorf("failed update mutated the program")
	}

	// Capacity invariant holds through updates too.
	p.Participants = 10
	in = validProgramInput()
	in.MaxParticipants = 5
	if err := p.Update(in, testNow.Add(time.Minute)); !domain.IsValidation(err) {
		t.Errorf("shrinking capacity below participants: err = %v, want validation error", err)
	}
}
