package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/openshelf/circulation/internal/service"
	"go.uber.org/zap"
)

// EmailHook receives each notification event off the topic. The default hook
// only logs; a real mailer can be swapped in without touching the consumer.
type EmailHook func(ctx context.Context, ev service.NotificationEvent) error

func LogEmailHook(log *zap.Logger) EmailHook {
	return func(_ context.Context, ev service.NotificationEvent) error {
		log.Info("email stub",
			zap.String("recipient", ev.RecipientID),
			zap.String("type", string(ev.Type)),
			zap.String("title", ev.Title))
		return nil
	}
}

type Consumer struct {
	hook EmailHook
	log  *zap.Logger
}

func NewConsumer(hook EmailHook, log *zap.Logger) *Consumer {
	return &Consumer{
		hook: hook,
		log:  log.Named("consumer"),
	}
}

// Setup runs at the start of every session, including each rebalance, so it
// must stay re-entrant.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var ev service.NotificationEvent
			if err := json.Unmarshal(message.Value, &ev); err != nil {
				consumer.log.Error("unmarshal notification event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.hook(context.Background(), ev); err != nil {
				consumer.log.Error("consumer.hook", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
