package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"KasumiAI/app/services/suggest/internal/svc"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

const statsKeyTTL = 60 * 60 * 24 * 35

func StartSuggestionConsumer(ctx context.Context, sc *svc.ServiceContext) error {
	if len(sc.Config.KafkaConf.Broker) == 0 || sc.Config.KafkaConf.SuggestionTopic == "" || sc.Config.KafkaConf.Group == "" {
		return nil
	}
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     sc.Config.KafkaConf.Broker,
		GroupID:     sc.Config.KafkaConf.Group,
		Topic:       sc.Config.KafkaConf.SuggestionTopic,
		MinBytes:    1,
		MaxBytes:    10 << 20,
		MaxWait:     50 * time.Millisecond,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		var evt SuggestionCreatedEvent
		if err := json.Unmarshal(m.Value, &evt); err == nil {
			handleSuggestionCreated(ctx, sc, evt)
		}
		_ = r.CommitMessages(ctx, m)
	}
}

// handleSuggestionCreated 审计日志 + 按天的成功/失败计数
func handleSuggestionCreated(ctx context.Context, sc *svc.ServiceContext, evt SuggestionCreatedEvent) {
	logx.WithContext(ctx).Infow("suggestion created",
		logx.Field("suggestion_id", evt.SuggestionId),
		logx.Field("user_id", evt.UserId),
		logx.Field("success", evt.Success),
		logx.Field("product_count", evt.ProductCount),
	)

	day := time.Unix(evt.CreatedAt, 0).Format("2006-01-02")
	outcome := "failure"
	if evt.Success {
		outcome = "success"
	}
	key := fmt.Sprintf("stats:suggestion:%s:%s", day, outcome)
	if _, err := sc.Redis.IncrCtx(ctx, key); err != nil {
		logx.WithContext(ctx).Errorf("incr suggestion stats failed: key=%s err=%v", key, err)
		return
	}
	_ = sc.Redis.ExpireCtx(ctx, key, statsKeyTTL)
}
