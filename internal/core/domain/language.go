package domain

import "fmt"

// Language selects which side of the bilingual corpus to operate on.
type Language string

const (
	// Spanish is the primary corpus language.
	Spanish Language = "es"

	// English is the secondary corpus language (translations).
	English Language = "en"
)

// ParseLanguage converts a user-supplied language code.
func ParseLanguage(code string) (Language, error) {
	switch code {
	case "es", "spanish":
		return Spanish, nil
	case "en", "english":
		return English, nil
	default:
		return "", fmt.Errorf("%w: %q (expected es or en)", ErrUnknownLanguage, code)
	}
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// Name returns the human-readable language name.
func (l Language) Name() string {
	if l == English {
		return "English"
	}
	return "Spanish"
}
