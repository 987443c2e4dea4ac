package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Zutime1215/CCN-Bus-tracker/config"
	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking"
)

func main() {
	configFilePath := flag.String("c", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFilePath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := config.ConfigureLogging(cfg); err != nil {
		log.Fatalf("logging: %v", err)
	}

	if err := config.ApplyMigrations(cfg); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	trackingModule, err := tracking.Build(db, amqpConn, mqttClient, cfg.AllowedBusIDs, cfg.UploadDir)
	if err != nil {
		log.Fatalf("tracking module: %v", err)
	}

	if err := trackingModule.StartSubscribers(); err != nil {
		log.Fatalf("start subscribers: %v", err)
	}

	if err := trackingModule.StartJobs(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer trackingModule.StopJobs()

	r := gin.Default()

	health := config.NewHealthChecker(db, amqpConn, mqttClient)
	health.Register(r)

	trackingModule.RegisterRoutes(&r.RouterGroup)

	log.Infof("listening on :%s, tracking %d buses", cfg.HTTPPort, len(cfg.AllowedBusIDs))
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
