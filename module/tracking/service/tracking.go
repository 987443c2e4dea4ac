package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/cache"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/blob"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/database"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/publisher"
)

// TrackingService runs the ingestion pipeline and serves the two query paths.
// Validation is ordered and fail-fast: nothing is written once a step
// rejects, and the live cache is only touched after the report has been
// persisted, so the cache can never claim a report that was lost.
type TrackingService struct {
	fleet   *FleetService
	reports database.ReportStore
	images  blob.ImageStore
	live    *cache.LiveLocations
	pub     publisher.LivePublisher
	now     func() time.Time
}

func NewTrackingService(fleet *FleetService, reports database.ReportStore, images blob.ImageStore, live *cache.LiveLocations, pub publisher.LivePublisher) *TrackingService {
	return &TrackingService{
		fleet:   fleet,
		reports: reports,
		images:  images,
		live:    live,
		pub:     pub,
		now:     time.Now,
	}
}

// IngestReport handles one full camera report: image bytes plus a raw
// "<lat>/<lon>" string. It returns the stored report on success.
func (s *TrackingService) IngestReport(ctx context.Context, busID string, image []byte, imageName, coordinates string) (*domain.Report, error) {
	if !s.fleet.Allowed(busID) {
		return nil, domain.ErrBusNotAllowed
	}
	if len(image) == 0 {
		return nil, domain.ErrMissingImage
	}
	if coordinates == "" {
		return nil, domain.ErrMissingCoordinates
	}

	coord, err := domain.ParseCoordinate(coordinates)
	if err != nil {
		return nil, err
	}

	ref, err := s.images.Store(ctx, image, imageName)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	return s.persist(ctx, busID, coord, ref)
}

// IngestTelemetry handles a coordinates-only report from the telemetry feed.
// The stored report carries no image reference.
func (s *TrackingService) IngestTelemetry(ctx context.Context, busID, coordinates string) (*domain.Report, error) {
	if !s.fleet.Allowed(busID) {
		return nil, domain.ErrBusNotAllowed
	}
	if coordinates == "" {
		return nil, domain.ErrMissingCoordinates
	}

	coord, err := domain.ParseCoordinate(coordinates)
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, busID, coord, "")
}

func (s *TrackingService) persist(ctx context.Context, busID string, coord domain.Coordinate, imageRef string) (*domain.Report, error) {
	now := s.now()
	report := &domain.Report{
		Coordinate: coord,
		CapturedAt: now.UnixMilli(),
		ImageRef:   imageRef,
	}

	if err := s.reports.Append(ctx, busID, domain.DateOf(now), report); err != nil {
		return nil, fmt.Errorf("append report: %w", err)
	}

	s.live.Update(busID, coord)

	if s.pub != nil {
		update := &domain.LiveUpdate{BusID: busID, Coordinate: coord, CapturedAt: report.CapturedAt}
		if err := s.pub.PublishUpdate(ctx, update); err != nil {
			// The report is already durable; the fanout is advisory.
			log.WithError(err).Warnf("live update for bus %s not published", busID)
		}
	}

	return report, nil
}

// Latest returns the most recent coordinate for busID from the live cache.
func (s *TrackingService) Latest(busID string) (domain.Coordinate, error) {
	if !s.fleet.Allowed(busID) {
		return domain.Coordinate{}, domain.ErrBusNotAllowed
	}

	coord, ok := s.live.Get(busID)
	if !ok {
		return domain.Coordinate{}, domain.ErrLocationNotFound
	}
	return coord, nil
}

// History returns the complete segment for one bus and one calendar day. A
// day that was never written yields an empty result.
func (s *TrackingService) History(ctx context.Context, busID, rawDate string) ([]domain.Report, error) {
	if !s.fleet.Allowed(busID) {
		return nil, domain.ErrBusNotAllowed
	}

	date, err := domain.ParseCalendarDate(rawDate)
	if err != nil {
		return nil, err
	}

	reports, err := s.reports.ReadSegment(ctx, busID, date)
	if err != nil {
		return nil, fmt.Errorf("read segment: %w", err)
	}
	return reports, nil
}
