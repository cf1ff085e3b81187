package domain

// Homily is one homily record: shared metadata plus one Text per corpus
// language. It is the canonical row shape of the external document table.
type Homily struct {
	// ID is the unique identifier for the homily.
	ID string

	// Date is the delivery date as an ISO 8601 string (YYYY-MM-DD).
	// The store orders the corpus by this field; the first seven bytes
	// are the month aggregation key.
	Date string

	// Occasion is the liturgical occasion, used as a title fallback.
	Occasion string

	// DetailURL points back at the archive page for the homily.
	DetailURL string

	// Spanish holds the Spanish text and its derived index fields.
	Spanish Text

	// English holds the English translation, when one exists.
	English Text
}

// Text is one language's text for a homily together with the derived
// index fields. Raw may be absent (nil) when no text exists for the
// language. Folded and WordCount are present if and only if Raw is
// present and non-empty; they are reproducible by re-running the
// normaliser on Raw, and the index builder is the only writer.
type Text struct {
	// Title is the homily title in this language.
	Title *string

	// Raw is the extracted text.
	Raw *string

	// Folded is the accent-folded, lowercased form of Raw, computed by
	// the index builder. Searches scan this, never Raw.
	Folded *string

	// WordCount is the token count of Raw, computed by the index
	// builder. Month statistics normalise against this.
	WordCount *int
}

// HasRaw reports whether this language has non-empty extracted text.
func (t Text) HasRaw() bool {
	return t.Raw != nil && *t.Raw != ""
}

// Indexed reports whether the derived index fields are populated.
func (t Text) Indexed() bool {
	return t.Folded != nil && t.WordCount != nil
}

// Text returns the named language side of the homily.
func (h *Homily) Text(lang Language) *Text {
	if lang == English {
		return &h.English
	}
	return &h.Spanish
}

// Month returns the YYYY-MM aggregation key of the homily's date, or ""
// when the date is too short to carry one.
func (h *Homily) Month() string {
	if len(h.Date) < 7 {
		return ""
	}
	return h.Date[:7]
}

// DisplayTitle returns the title for the language, falling back to the
// occasion and then to a placeholder.
func (h *Homily) DisplayTitle(lang Language) string {
	if t := h.Text(lang).Title; t != nil && *t != "" {
		return *t
	}
	if h.Occasion != "" {
		return h.Occasion
	}
	return "(untitled)"
}
