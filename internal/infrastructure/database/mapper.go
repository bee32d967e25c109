package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz maps zero time to SQL NULL.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// pgtypeInt4ToInt returns 0 for SQL NULL.
func pgtypeInt4ToInt(v pgtype.Int4) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int32)
}

// intToPgtypeInt4 maps 0 to SQL NULL (the "unset" convention for
// max_participants and rating).
func intToPgtypeInt4(v int) pgtype.Int4 {
	if v == 0 {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(v), Valid: true}
}

// pgtypeTextToString returns "" for SQL NULL.
func pgtypeTextToString(v pgtype.Text) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

// stringToPgtypeText maps "" to SQL NULL.
func stringToPgtypeText(v string) pgtype.Text {
	if v == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: v, Valid: true}
}
