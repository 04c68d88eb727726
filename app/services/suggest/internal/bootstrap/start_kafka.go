package bootstrap

import (
	"context"

	"KasumiAI/app/services/suggest/internal/mq"
	"KasumiAI/app/services/suggest/internal/svc"
)

// StartKafka starts the suggestion event consumer if configured; returns a stop func.
func StartKafka(sc *svc.ServiceContext) func() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = mq.StartSuggestionConsumer(ctx, sc) }()
	return func() { cancel() }
}
