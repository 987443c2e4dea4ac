package tracking

import (
	"database/sql"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/cache"
	handler "github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/handler/http"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/handler/subscriber"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/blob/disk"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/database/postgres"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/internal/repository/publisher/rabbitmq"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/service"
)

type Module struct {
	TrackingSvc *service.TrackingService
	StatsSvc    *service.StatsService
	handler     *handler.TrackingHandler
	subscriber  *subscriber.TelemetrySubscriber
	cron        *cron.Cron
}

func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, allowedBusIDs []string, uploadDir string) (*Module, error) {
	reportStore := postgres.NewReportStore(db)
	imageStore := disk.NewImageStore(uploadDir)

	livePub, err := rabbitmq.NewLivePublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("live publisher: %w", err)
	}

	fleet := service.NewFleetService(allowedBusIDs)
	liveCache := cache.NewLiveLocations()
	trackingSvc := service.NewTrackingService(fleet, reportStore, imageStore, liveCache, livePub)
	statsSvc := service.NewStatsService(fleet, reportStore)

	h := handler.NewTrackingHandler(trackingSvc)
	sub := subscriber.NewTelemetrySubscriber(mqttClient, trackingSvc)

	return &Module{
		TrackingSvc: trackingSvc,
		StatsSvc:    statsSvc,
		handler:     h,
		subscriber:  sub,
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.handler.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}

// StartJobs schedules the daily ingestion summary.
func (m *Module) StartJobs() error {
	m.cron = cron.New()
	if _, err := m.cron.AddFunc("@daily", m.StatsSvc.LogDailySummary); err != nil {
		return fmt.Errorf("schedule daily summary: %w", err)
	}
	m.cron.Start()
	return nil
}

func (m *Module) StopJobs() {
	if m.cron != nil {
		m.cron.Stop()
	}
}
