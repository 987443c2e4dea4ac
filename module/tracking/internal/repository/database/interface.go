package database

import (
	"context"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
)

// ReportStore persists location reports partitioned by (busID, calendar day).
// Segments are append-only; a day that was never written reads back as an
// empty slice, not as an error.
type ReportStore interface {
	Append(ctx context.Context, busID string, date domain.CalendarDate, report *domain.Report) error
	ReadSegment(ctx context.Context, busID string, date domain.CalendarDate) ([]domain.Report, error)
	CountSegment(ctx context.Context, busID string, date domain.CalendarDate) (int64, error)
}
