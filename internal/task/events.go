package task

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

// TaskEvent is published on task lifecycle changes for downstream
// notification consumers.
type TaskEvent struct {
	TaskID     string    `json:"taskId"`
	EmployeeID string    `json:"employeeId"`
	Action     string    `json:"action"`
	Status     string    `json:"status,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	EventCreated       = "created"
	EventStatusChanged = "status_changed"
	EventDeleted       = "deleted"
)

type EventProducer interface {
	SendTaskEvent(ctx context.Context, event TaskEvent) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaProducer(brokers []string, topic string) EventProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &kafkaProducer{
		writer: writer,
		topic:  topic,
	}
}

func (p *kafkaProducer) SendTaskEvent(ctx context.Context, event TaskEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.TaskID),
		Value: eventJSON,
		Time:  time.Now(),
	}

	return p.writer.WriteMessages(ctx, message)
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}
