package events

import "context"

// Publisher отправляет события
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// PublishMetrics счётчик отправленных событий
type PublishMetrics interface {
	EventPublished(eventType, result string)
}

// InstrumentedPublisher считает результат каждой отправки
type InstrumentedPublisher struct {
	next    Publisher
	metrics PublishMetrics
}

// Instrument оборачивает издателя счётчиком
func Instrument(next Publisher, metrics PublishMetrics) *InstrumentedPublisher {
	return &InstrumentedPublisher{next: next, metrics: metrics}
}

// Publish отправляет событие и записывает результат ok/error
func (p *InstrumentedPublisher) Publish(ctx context.Context, event Event) error {
	err := p.next.Publish(ctx, event)

	result := "ok"
	if err != nil {
		result = "error"
	}
	p.metrics.EventPublished(event.Type, result)

	return err
}
