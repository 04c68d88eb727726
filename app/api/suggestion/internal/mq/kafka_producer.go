package mq

import (
	"context"
	"encoding/json"
	"time"

	"KasumiAI/app/api/suggestion/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishSuggestionCreatedEvent sends a suggestion event to Kafka.
// Uses the shared writer in ServiceContext when available, else creates a
// short-lived writer to publish one message. Unconfigured brokers are a
// silent no-op: events are an optional side channel.
func PublishSuggestionCreatedEvent(sc *svc.ServiceContext, evt SuggestionCreatedEvent) error {
	if len(sc.Config.KafkaConf.Broker) == 0 || sc.Config.KafkaConf.SuggestionTopic == "" {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	w := sc.KafkaWriter
	var closer func() error
	if w == nil {
		ww := &kafka.Writer{
			Addr:                   kafka.TCP(sc.Config.KafkaConf.Broker...),
			Topic:                  sc.Config.KafkaConf.SuggestionTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           5 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		w = ww
		closer = ww.Close
	}
	if err := w.WriteMessages(context.Background(), kafka.Message{Value: body}); err != nil {
		return err
	}
	if closer != nil {
		_ = closer()
	}
	return nil
}
