package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
)

func TestLogDailySummary_CountsPreviousDayForEveryBus(t *testing.T) {
	counted := make(map[string]domain.CalendarDate)
	reports := &mockReportStore{
		countSegmentFn: func(_ context.Context, busID string, date domain.CalendarDate) (int64, error) {
			counted[busID] = date
			return 7, nil
		},
	}

	svc := NewStatsService(NewFleetService([]string{"1", "2", "3"}), reports)
	svc.now = func() time.Time { return time.Date(2024, 5, 7, 0, 5, 0, 0, time.UTC) }

	svc.LogDailySummary()

	if len(counted) != 3 {
		t.Fatalf("expected 3 buses counted, got %d", len(counted))
	}
	for busID, date := range counted {
		if date != domain.CalendarDate("2024-05-06") {
			t.Errorf("bus %s counted for %s, expected 2024-05-06", busID, date)
		}
	}
}

func TestLogDailySummary_ContinuesPastErrors(t *testing.T) {
	var calls int
	reports := &mockReportStore{
		countSegmentFn: func(_ context.Context, busID string, _ domain.CalendarDate) (int64, error) {
			calls++
			if busID == "1" {
				return 0, errors.New("store unreachable")
			}
			return 1, nil
		},
	}

	svc := NewStatsService(NewFleetService([]string{"1", "2", "3"}), reports)
	svc.LogDailySummary()

	if calls != 3 {
		t.Fatalf("expected all 3 buses attempted, got %d", calls)
	}
}
