package services

import (
	"encoding/json"
	"fmt"
	"time"

	"newsdesk-http-service/config"
	"newsdesk-http-service/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// WallboardTopic receives task change events so the TV displays can refresh
// without polling.
const WallboardTopic = "wallboard/updates"

// InterfaceMQTTService defines the wallboard broadcast operations
type InterfaceMQTTService interface {
	Connect() error
	PublishTaskEvent(event string, task *models.Task)
	Disconnect()
}

// MQTTService publishes task change events to the wallboard broker.
// All operations are best effort: a missing or unreachable broker must
// never affect request handling.
type MQTTService struct {
	client mqtt.Client
	config *config.Config
}

// TaskEvent is the wallboard broadcast payload
type TaskEvent struct {
	Event      string `json:"event"`
	TaskID     uint   `json:"task_id"`
	NewsroomID uint   `json:"newsroom_id"`
	Date       string `json:"date"`
	Title      string `json:"title"`
	Status     string `json:"status"`
}

// NewMQTTService creates a new MQTT service
func NewMQTTService(cfg *config.Config) *MQTTService {
	return &MQTTService{config: cfg}
}

// Connect establishes the broker connection. A blank broker address
// disables the service.
func (s *MQTTService) Connect() error {
	if s.config.MQTTBroker == "" {
		config.Info("MQTT broker not configured, wallboard live updates disabled")
		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(s.config.MQTTBroker).
		SetClientID(s.config.MQTTClientID).
		SetUsername(s.config.MQTTUsername).
		SetPassword(s.config.MQTTPassword).
		SetAutoReconnect(true).
		SetConnectTimeout(5 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker %s: %v", s.config.MQTTBroker, token.Error())
	}

	s.client = client
	config.Info("Connected to MQTT broker %s", s.config.MQTTBroker)
	return nil
}

// PublishTaskEvent broadcasts a task change to the wallboard topic
func (s *MQTTService) PublishTaskEvent(event string, task *models.Task) {
	if s.client == nil || !s.client.IsConnected() {
		return
	}

	payload, err := json.Marshal(TaskEvent{
		Event:      event,
		TaskID:     task.ID,
		NewsroomID: task.NewsroomID,
		Date:       task.Date,
		Title:      task.Title,
		Status:     task.Status,
	})
	if err != nil {
		config.Warning("failed to encode wallboard event: %v", err)
		return
	}

	token := s.client.Publish(WallboardTopic, 0, false, payload)
	if token.WaitTimeout(2*time.Second) && token.Error() != nil {
		config.Warning("failed to publish wallboard event: %v", token.Error())
	}
}

// Disconnect closes the broker connection
func (s *MQTTService) Disconnect() {
	if s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}
}
