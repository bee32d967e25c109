package output

import "context"

// AdmissionAccounting maintains the participant counter on programs as
// enrollments are persisted or removed. It is a deliberate seam: the
// enroll use case evaluates the admission predicate but never writes the
// counter itself; the driving adapter invokes this collaborator after a
// successful write. Implementations must enforce the capacity ceiling
// at the storage layer (conditional write or transaction), since the
// use case's check-then-act sequence is not atomic.
type AdmissionAccounting interface {
	// RecordEnrollment advances the program's participant counter by one.
	RecordEnrollment(ctx context.Context, programID string) error
	// ReleaseEnrollment lowers the counter by one, flooring at zero.
	ReleaseEnrollment(ctx context.Context, programID string) error
}
