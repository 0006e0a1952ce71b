package messaging

import (
	"context"
	"encoding/json"

	"fleet-rental/internal/pkg/config"
	"fleet-rental/internal/pkg/errs"
	"fleet-rental/internal/usecase/commands"

	"github.com/IBM/sarama"
)

// KafkaPublisher emits booking lifecycle events to a single topic, keyed by
// booking ID so events for one booking stay ordered within a partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Idempotent = true
	sc.Producer.Return.Successes = true
	sc.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka producer")
	}
	return &KafkaPublisher{producer: producer, topic: cfg.Topic}, nil
}

func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, evt commands.BookingEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.BookingID.String()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(evt.Type)},
		},
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

// NoopPublisher stands in when no brokers are configured, keeping the
// booking commands free of broker conditionals.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) PublishBookingEvent(context.Context, commands.BookingEvent) error {
	return nil
}
