package domain

import "time"

// Coordinate is a parsed latitude/longitude pair. Values are not range
// checked; any finite number is accepted.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Report is one stored location report. Reports are append-only: written
// once at ingestion, never updated or deleted.
type Report struct {
	Coordinate Coordinate
	CapturedAt int64 // epoch milliseconds at ingestion
	ImageRef   string
}

// LiveUpdate is the payload fanned out to live-tracking consumers after a
// report has been persisted.
type LiveUpdate struct {
	BusID      string
	Coordinate Coordinate
	CapturedAt int64
}

// CalendarDate is an ISO calendar day (YYYY-MM-DD) and the second level of
// the report partition key.
type CalendarDate string

const calendarDateLayout = "2006-01-02"

func ParseCalendarDate(raw string) (CalendarDate, error) {
	if _, err := time.Parse(calendarDateLayout, raw); err != nil {
		return "", ErrInvalidDate
	}
	return CalendarDate(raw), nil
}

// DateOf returns the calendar day for t, normalized to UTC.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate(t.UTC().Format(calendarDateLayout))
}

func (d CalendarDate) String() string {
	return string(d)
}
