package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/database"
)

// StatsService logs a per-bus report count for the previous day. It is
// read-only and scheduled once a day.
type StatsService struct {
	fleet   *FleetService
	reports database.ReportStore
	now     func() time.Time
}

func NewStatsService(fleet *FleetService, reports database.ReportStore) *StatsService {
	return &StatsService{fleet: fleet, reports: reports, now: time.Now}
}

func (s *StatsService) LogDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	day := domain.DateOf(s.now().AddDate(0, 0, -1))
	for _, busID := range s.fleet.BusIDs() {
		count, err := s.reports.CountSegment(ctx, busID, day)
		if err != nil {
			log.WithError(err).Errorf("daily summary for bus %s failed", busID)
			continue
		}
		log.Infof("bus %s: %d reports on %s", busID, count, day)
	}
}
