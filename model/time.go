package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// springLayout is the backend's default LocalDateTime serialization,
// an ISO timestamp without a zone offset.
const springLayout = "2006-01-02T15:04:05"

// ParseError is returned when an upstream date value has a shape the
// adapter does not recognize.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized date value: %s", e.Value)
}

// Timestamp normalizes the several date representations the backend emits
// into a single time.Time at the API boundary. Accepted shapes: RFC 3339,
// zone-less ISO timestamps, bare dates, and the decomposed
// {year,month,day,...} object form. Anything else fails to decode.
type Timestamp struct {
	time.Time
}

type dateParts struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return t.parseString(s)
	}

	var parts dateParts
	if err := json.Unmarshal(data, &parts); err == nil && parts.Year > 0 && parts.Month >= 1 && parts.Month <= 12 && parts.Day >= 1 {
		t.Time = time.Date(parts.Year, time.Month(parts.Month), parts.Day, parts.Hour, parts.Minute, parts.Second, 0, time.Local)
		return nil
	}

	return &ParseError{Value: raw}
}

func (t *Timestamp) parseString(s string) error {
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, springLayout, time.DateOnly} {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return &ParseError{Value: s}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(springLayout))
}
