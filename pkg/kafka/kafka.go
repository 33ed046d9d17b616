package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	cb "github.com/openshelf/circulation/pkg/circuit_breaker"
)

const (
	NotificationsTopic    = "notification-events"
	NotifierConsumerGroup = "circulation-notifier"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumerGroup(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer-group loop until the context is cancelled.
func Consume(ctx context.Context, group sarama.ConsumerGroup, h sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := group.Consume(ctx, topics, h); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Publisher sends JSON-encoded events to a topic. Sends go through a circuit
// breaker so a dead broker fails fast instead of stalling every publisher.
type Publisher interface {
	Publish(topic string, v any) error
}

func NewPublisher(producer sarama.SyncProducer) Publisher {
	return &publisherImpl{
		producer: producer,
		breaker:  cb.New(20, 30*time.Second, 0.5, 3),
	}
}

type publisherImpl struct {
	producer sarama.SyncProducer
	breaker  cb.CircuitBreaker
}

func (p *publisherImpl) Publish(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	return p.breaker.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}
