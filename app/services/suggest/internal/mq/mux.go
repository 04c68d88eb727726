package mq

import (
	"KasumiAI/app/services/suggest/internal/svc"

	"github.com/hibiken/asynq"
)

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPruneHistory, newPruneHistoryHandler(sc))
	return mux
}
