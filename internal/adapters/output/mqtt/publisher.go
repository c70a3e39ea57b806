package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"todolist-api/configs"
	"todolist-api/internal/domain"
	"todolist-api/internal/ports/output"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure Publisher implements output.ReadingSink interface
var _ output.ReadingSink = (*Publisher)(nil)

const (
	defaultConnectTimeout    = 10 * time.Second
	defaultPublishTimeout    = 5 * time.Second
	defaultDisconnectQuiesce = 250 // milliseconds
	defaultKeepAlive         = 60 * time.Second
	maxQoS                   = 2
)

// climatePayload is the retained message body published per reading
type climatePayload struct {
	Source      string  `json:"source"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Timestamp   string  `json:"timestamp"`
}

// Publisher struct - Output adapter publishing climate readings to an MQTT broker
type Publisher struct {
	client pahomqtt.Client
	topic  string
	qos    byte
}

// Connect func - Connects to the broker described by cfg and returns a ready publisher
func Connect(cfg configs.MQTT) (*Publisher, error) {
	client := pahomqtt.NewClient(buildClientOptions(cfg))
	token := client.Connect()
	if !token.WaitTimeout(defaultConnectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, defaultConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	p := NewPublisher(client, cfg)
	logrus.Infof("MQTT publisher connected, topic: %s", p.topic)
	return p, nil
}

// NewPublisher func - Wraps an existing paho client
func NewPublisher(client pahomqtt.Client, cfg configs.MQTT) *Publisher {
	qos := cfg.QoS
	if qos < 0 || qos > maxQoS {
		qos = 1
	}
	return &Publisher{
		client: client,
		topic:  ClimateTopic(cfg.TopicPrefix),
		qos:    byte(qos),
	}
}

// ClimateTopic returns the topic readings are published on
func ClimateTopic(prefix string) string {
	if prefix == "" {
		prefix = "todolist"
	}
	return prefix + "/sensors/climate"
}

func buildClientOptions(cfg configs.MQTT) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port))
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(defaultConnectTimeout)
	opts.SetKeepAlive(defaultKeepAlive)
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		logrus.Warnf("MQTT connection lost: %v", err)
	})
	return opts
}

// Name func
func (p *Publisher) Name() string {
	return "mqtt"
}

// Topic func
func (p *Publisher) Topic() string {
	return p.topic
}

// Record publishes the reading as a retained JSON message and waits for the ack
func (p *Publisher) Record(ctx context.Context, reading domain.ClimateReading) error {
	if !p.client.IsConnected() {
		return ErrNotConnected
	}

	payload, err := json.Marshal(climatePayload{
		Source:      reading.Source,
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		Timestamp:   reading.ReadAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %w", ErrPublishFailed, err)
	}

	token := p.client.Publish(p.topic, p.qos, true, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(defaultPublishTimeout):
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

// Close disconnects from the broker
func (p *Publisher) Close() error {
	if p.client == nil {
		return nil
	}
	p.client.Disconnect(defaultDisconnectQuiesce)
	logrus.Println("MQTT publisher disconnected")
	return nil
}
