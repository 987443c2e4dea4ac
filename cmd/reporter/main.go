// Command reporter simulates a small fleet publishing telemetry over MQTT.
// It is a development tool for feeding the tracker without real buses.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type telemetryMessage struct {
	BusID       string `json:"bus_id"`
	Coordinates string `json:"coordinates"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	buses := []string{"1", "2", "3"}
	if v := os.Getenv("BUS_ALLOWLIST"); v != "" {
		buses = strings.Split(v, ",")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("bus-tracker-reporter")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("connected to %s, reporting for buses %v every %ds", broker, buses, intervalSec)

	// Start each bus somewhere in the city and drift from there.
	positions := make(map[string][2]float64, len(buses))
	for _, id := range buses {
		positions[id] = [2]float64{
			-6.2 + (rand.Float64()-0.5)*0.1,
			106.8 + (rand.Float64()-0.5)*0.1,
		}
	}

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		id := buses[rand.Intn(len(buses))]

		pos := positions[id]
		pos[0] += (rand.Float64() - 0.5) * 0.001
		pos[1] += (rand.Float64() - 0.5) * 0.001
		positions[id] = pos

		msg := telemetryMessage{
			BusID:       id,
			Coordinates: fmt.Sprintf("%f/%f", pos[0], pos[1]),
		}

		payload, _ := json.Marshal(msg)
		topic := fmt.Sprintf("/fleet/bus/%s/location", id)

		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		log.Printf("published to %s: %s", topic, payload)
	}
}
