package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"KasumiAI/app/services/suggest/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// newPruneHistoryHandler trims a user's history down to the newest Keep
// records. Deletes go through the owner-scoped model method so the cache
// stays consistent with the table.
func newPruneHistoryHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload PruneHistoryPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal prune payload: %w", err)
		}
		if payload.UserId <= 0 || payload.Keep <= 0 {
			return nil
		}

		ids, err := sc.SuggestionModel.FindPruneIds(ctx, payload.UserId, payload.Keep)
		if err != nil {
			return fmt.Errorf("find prune ids: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		pruned := 0
		for _, id := range ids {
			if err := sc.SuggestionModel.DeleteByIdUserId(ctx, id, payload.UserId); err != nil {
				logx.WithContext(ctx).Errorf("prune suggestion failed: id=%d user=%d err=%v", id, payload.UserId, err)
				continue
			}
			pruned++
		}
		logx.WithContext(ctx).Infof("history pruned: user=%d keep=%d removed=%d", payload.UserId, payload.Keep, pruned)
		return nil
	}
}
