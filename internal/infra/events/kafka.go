package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 5 * time.Second

// MessageWriter подмножество *kafka.Writer
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher отправляет события в топик Kafka, ключ сообщения - номер бронирования
type KafkaPublisher struct {
	writer  MessageWriter
	timeout time.Duration
}

// NewKafkaWriter создаёт writer для брокеров, перечисленных через запятую
func NewKafkaWriter(brokers, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(SplitBrokers(brokers)...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// NewKafkaPublisher создаёт издателя поверх writer
func NewKafkaPublisher(writer MessageWriter, timeout time.Duration) *KafkaPublisher {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	return &KafkaPublisher{writer: writer, timeout: timeout}
}

// Publish сериализует событие в JSON и отправляет одним сообщением
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPublish, event.Type, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(event.Key()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrPublish, event.Type, event.Key(), err)
	}
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// SplitBrokers разбирает список брокеров "host1:9092, host2:9092"
func SplitBrokers(raw string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
