package domain

// SearchOptions configures a search call.
type SearchOptions struct {
	// Language selects the corpus side to scan. Defaults to Spanish.
	Language Language

	// AccentSensitive disables accent folding of the query. The corpus
	// side is folded either way at index time, so accent-sensitive
	// searches only change how the query tokens are normalised.
	AccentSensitive bool
}

// IndexStats summarises one index build run.
type IndexStats struct {
	// Language is the corpus side that was built.
	Language Language `json:"language"`

	// Indexed is the number of homilies processed this run.
	Indexed int `json:"indexed"`

	// UpToDate is the number of homilies that already had both derived
	// fields and were left untouched.
	UpToDate int `json:"up_to_date"`

	// ElapsedSeconds is the wall-clock build time.
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// IndexFault is one consistency failure found by the offline checker:
// a stored derived field that a fresh normaliser run does not reproduce.
type IndexFault struct {
	// HomilyID identifies the inconsistent homily.
	HomilyID string `json:"homily_id"`

	// Field names the derived field that mismatched
	// ("folded_text" or "word_count").
	Field string `json:"field"`

	// Detail describes the mismatch.
	Detail string `json:"detail"`
}

// LanguageCoverage reports how much of one corpus side has text and how
// much of that is indexed.
type LanguageCoverage struct {
	// WithText is the number of homilies with non-empty raw text.
	WithText int `json:"with_text"`

	// Indexed is the number of those with derived index fields.
	Indexed int `json:"indexed"`
}

// CorpusStats describes the stored corpus.
type CorpusStats struct {
	// Total is the number of homily records.
	Total int `json:"total"`

	// FirstDate and LastDate bound the corpus date range (ISO 8601).
	FirstDate string `json:"first_date"`
	LastDate  string `json:"last_date"`

	// Spanish and English report per-language text and index coverage.
	Spanish LanguageCoverage `json:"spanish"`
	English LanguageCoverage `json:"english"`
}
