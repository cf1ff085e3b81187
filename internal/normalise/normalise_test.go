package normalise

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFold_StripsAccents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"acute vowels", "liberación", "liberacion"},
		{"all spanish vowels", "áéíóú", "aeiou"},
		{"uppercase preserved", "Óscar", "Oscar"},
		{"enye folds to n", "año señor", "ano senor"},
		{"diaeresis", "vergüenza", "verguenza"},
		{"plain ascii untouched", "pueblo de dios", "pueblo de dios"},
		{"punctuation untouched", "¡Sí, señores!", "¡Si, senores!"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func TestFold_Idempotent(t *testing.T) {
	inputs := []string{
		"liberación y opresión",
		"El Señor está con ustedes",
		"no accents at all",
		"",
	}
	for _, in := range inputs {
		once := Fold(in)
		assert.Equal(t, once, Fold(once), "Fold(Fold(x)) must equal Fold(x) for %q", in)
	}
}

func TestFold_NeverLengthensLatinText(t *testing.T) {
	inputs := []string{"liberación", "ñandú", "café", "vergüenza", "plain"}
	for _, in := range inputs {
		assert.LessOrEqual(t,
			utf8.RuneCountInString(Fold(in)),
			utf8.RuneCountInString(in),
			"folding %q must not add characters", in)
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "lowercases and splits on spaces",
			input: "Pueblo De Dios",
			want:  []string{"pueblo", "de", "dios"},
		},
		{
			name:  "punctuation separates",
			input: "hermanos, hermanas; escuchen...",
			want:  []string{"hermanos", "hermanas", "escuchen"},
		},
		{
			name:  "inverted punctuation discarded",
			input: "¿Quién es? ¡El Señor!",
			want:  []string{"quién", "es", "el", "señor"},
		},
		{
			name:  "digits and underscore are word characters",
			input: "salmo_23 capítulo 4",
			want:  []string{"salmo_23", "capítulo", "4"},
		},
		{
			name:  "star is not a word character",
			input: "liber*",
			want:  []string{"liber"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only separators",
			input: " .,;! ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.input))
		})
	}
}

func TestQueryTokens_PreservesWildcards(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"liber*", []string{"liber*"}},
		{"*cion", []string{"*cion"}},
		{"li*ad", []string{"li*ad"}},
		{"*", []string{"*"}},
		{"Pueblo de Dios", []string{"pueblo", "de", "dios"}},
		{"liber* pueblo", []string{"liber*", "pueblo"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QueryTokens(tt.input), "input %q", tt.input)
	}
}

func TestFields_SubstringsOfInput(t *testing.T) {
	// The scanner depends on Fields not re-lowercasing: folded corpus
	// text is already lowercase and tokens are slices of it.
	got := Fields("el pueblo de dios")
	assert.Equal(t, []string{"el", "pueblo", "de", "dios"}, got)
}

func TestTokenCountMatchesFoldedTokenCount(t *testing.T) {
	// Folding substitutes characters inside tokens but never splits or
	// merges them, so counting from raw or folded text must agree.
	raw := "La liberación del pueblo: ¡óiganlo, señores ricos!"
	assert.Equal(t, len(Tokens(raw)), len(Tokens(Fold(raw))))
}
