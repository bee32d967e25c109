package domain

// ProgramStatus is the lifecycle state of a program.
type ProgramStatus string

const (
	ProgramUpcoming  ProgramStatus = "upcoming"
	ProgramActive    ProgramStatus = "active"
	ProgramCompleted ProgramStatus = "completed"
	ProgramCancelled ProgramStatus = "cancelled"
)

// ValidProgramStatuses is the canonical set of accepted program statuses.
var ValidProgramStatuses = map[ProgramStatus]bool{
	ProgramUpcoming:  true,
	ProgramActive:    true,
	ProgramCompleted: true,
	ProgramCancelled: true,
}

// ProgramType categorizes the kind of offering.
type ProgramType string

const (
	TypeAcceleration ProgramType = "acceleration"
	TypeWorkshop     ProgramType = "workshop"
	TypeBootcamp     ProgramType = "bootcamp"
	TypeMentorship   ProgramType = "mentorship"
	TypeCourse       ProgramType = "course"
	TypeOther        ProgramType = "other"
)

// ValidProgramTypes is the canonical set of accepted program types.
var ValidProgramTypes = map[ProgramType]bool{
	TypeAcceleration: true,
	TypeWorkshop:     true,
	TypeBootcamp:     true,
	TypeMentorship:   true,
	TypeCourse:       true,
	TypeOther:        true,
}

// EnrollmentStatus is the state of a user's enrollment in a program.
type EnrollmentStatus string

const (
	StatusEnrolled  EnrollmentStatus = "enrolled"
	StatusCompleted EnrollmentStatus = "completed"
	StatusDropped   EnrollmentStatus = "dropped"
	StatusRejected  EnrollmentStatus = "rejected"
)

// ValidEnrollmentStatuses is the canonical set of accepted enrollment statuses.
var ValidEnrollmentStatuses = map[EnrollmentStatus]bool{
	StatusEnrolled:  true,
	StatusCompleted: true,
	StatusDropped:   true,
	StatusRejected:  true,
}
