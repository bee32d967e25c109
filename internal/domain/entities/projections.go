package entities

// UserRef is a read-only projection of a user record, attached to detail
// lookups. User accounts themselves are managed elsewhere.
type UserRef struct {
	ID   string
	Name string
}

// ProgramWithCreator pairs a program with its creator's profile.
type ProgramWithCreator struct {
	Program Program
	Creator UserRef
}

// EnrollmentWithDetails pairs an enrollment with its program and user.
type EnrollmentWithDetails struct {
	Enrollment Enrollment
	Program    Program
	User       UserRef
}
