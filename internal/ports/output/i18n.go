package output

// T is a minimal i18n contract for user-facing messages (admission
// denials, transition refusals). Keys are domain error codes.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
