package intent

// Default user-facing replies, Italian like the catalog.
const (
	DefaultEmptyMessage         = "Per favore scrivi qualcosa."
	DefaultTooShortMessage      = "Il messaggio è troppo corto, puoi scrivere qualcosa in più?"
	DefaultFallbackMessage      = "Non ho capito bene, puoi riformulare?"
	DefaultApologyMessage       = "Mi dispiace, non ho una risposta per questo."
	DefaultInternalErrorMessage = "Si è verificato un errore, riprova più tardi."
)

// DefaultMessages returns the built-in replies.
func DefaultMessages() Messages {
	return Messages{
		Empty:         DefaultEmptyMessage,
		TooShort:      DefaultTooShortMessage,
		Fallback:      DefaultFallbackMessage,
		Apology:       DefaultApologyMessage,
		InternalError: DefaultInternalErrorMessage,
	}
}

// WithDefaults fills blank fields from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	d := DefaultMessages()
	if m.Empty == "" {
		m.Empty = d.Empty
	}
	if m.TooShort == "" {
		m.TooShort = d.TooShort
	}
	if m.Fallback == "" {
		m.Fallback = d.Fallback
	}
	if m.Apology == "" {
		m.Apology = d.Apology
	}
	if m.InternalError == "" {
		m.InternalError = d.InternalError
	}
	return m
}
