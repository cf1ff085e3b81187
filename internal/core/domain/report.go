package domain

import (
	"bytes"
	"encoding/json"
	"sort"
)

// HomilyHit is one homily that matched a search, with its match count.
type HomilyHit struct {
	// ID identifies the homily.
	ID string `json:"id"`

	// Date is the homily's ISO 8601 date.
	Date string `json:"date"`

	// Title is the display title in the searched language.
	Title string `json:"title"`

	// DetailURL points back at the archive page.
	DetailURL string `json:"detail_url"`

	// Count is the number of non-overlapping matches in the homily.
	Count int `json:"count"`
}

// MonthBucket aggregates one calendar month of the corpus for a search.
// TotalWords and NumHomilies cover every homily with text that month,
// matched or not; a month with zero matches still reports them.
type MonthBucket struct {
	// Count is the total matches across the month's homilies.
	Count int `json:"count"`

	// TotalWords is the word count over all homilies with text.
	TotalWords int `json:"total_words"`

	// NumHomilies is the number of homilies with text.
	NumHomilies int `json:"num_homilies"`

	// Per10kWords is Count normalised per 10,000 words of text.
	Per10kWords float64 `json:"per_10k_words"`

	// PerHomily is Count normalised per homily.
	PerHomily float64 `json:"per_homily"`

	// Homilies lists the matching homilies in date order.
	Homilies []HomilyHit `json:"homilies"`
}

// MonthList is an insertion-ordered map of YYYY-MM keys to buckets. The
// corpus is scanned date-ascending, so insertion order is chronological;
// chart rendering and ranking rely on that.
type MonthList struct {
	keys    []string
	buckets map[string]*MonthBucket
}

// NewMonthList creates an empty month list.
func NewMonthList() *MonthList {
	return &MonthList{buckets: make(map[string]*MonthBucket)}
}

// Bucket returns the bucket for key, creating it on first sight.
func (l *MonthList) Bucket(key string) *MonthBucket {
	if b, ok := l.buckets[key]; ok {
		return b
	}
	b := &MonthBucket{}
	l.keys = append(l.keys, key)
	l.buckets[key] = b
	return b
}

// Get returns the bucket for key without creating it.
func (l *MonthList) Get(key string) (*MonthBucket, bool) {
	b, ok := l.buckets[key]
	return b, ok
}

// Keys returns the month keys in insertion (chronological) order.
func (l *MonthList) Keys() []string {
	return l.keys
}

// Len returns the number of months.
func (l *MonthList) Len() int {
	return len(l.keys)
}

// ComputeRates fills in the per-10k-words and per-homily rates for every
// bucket. Empty denominators yield 0.0, never a division error.
func (l *MonthList) ComputeRates() {
	for _, key := range l.keys {
		b := l.buckets[key]
		b.Per10kWords = 0.0
		if b.TotalWords > 0 {
			b.Per10kWords = float64(b.Count) / float64(b.TotalWords) * 10000
		}
		b.PerHomily = 0.0
		if b.NumHomilies > 0 {
			b.PerHomily = float64(b.Count) / float64(b.NumHomilies)
		}
	}
}

// MarshalJSON emits the months as a JSON object whose keys keep
// insertion order, matching the ordered mapping callers iterate.
func (l *MonthList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range l.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(l.buckets[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Report is the result of one search call.
type Report struct {
	// Term is the raw search term as the user typed it.
	Term string `json:"term"`

	// Tokens are the normalised query tokens.
	Tokens []string `json:"tokens"`

	// ElapsedSeconds is the wall-clock search time.
	ElapsedSeconds float64 `json:"elapsed_seconds"`

	// TotalCount is the total matches across the whole corpus.
	TotalCount int `json:"total_count"`

	// TotalHomilies is the number of distinct homilies with a match.
	TotalHomilies int `json:"total_homilies"`

	// Months holds the per-month aggregation in chronological order.
	Months *MonthList `json:"months"`
}

// NewReport creates an empty report for a term and its tokens.
func NewReport(term string, tokens []string) *Report {
	return &Report{
		Term:   term,
		Tokens: tokens,
		Months: NewMonthList(),
	}
}

// TopHomilies returns the n homilies with the most matches. The sort is
// stable over the date-ordered hit lists, so ties keep date order.
func (r *Report) TopHomilies(n int) []HomilyHit {
	var hits []HomilyHit
	for _, key := range r.Months.Keys() {
		b, _ := r.Months.Get(key)
		hits = append(hits, b.Homilies...)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Count > hits[j].Count
	})
	if n >= 0 && n < len(hits) {
		hits = hits[:n]
	}
	return hits
}
