// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"KasumiAI/app/api/suggestion/internal/mq"
	"KasumiAI/app/api/suggestion/internal/svc"
	"KasumiAI/app/api/suggestion/internal/types"
	"KasumiAI/app/common/consts/errno"
	"KasumiAI/app/common/util"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GenerateSuggestionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateSuggestionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateSuggestionLogic {
	return &GenerateSuggestionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GenerateSuggestionLogic) GenerateSuggestion(req *types.GenerateSuggestionRequest) (resp *types.GenerateSuggestionResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.New(int(errno.InvalidParam), "query is required")
	}
	if l.svcCtx.Engine == nil {
		return nil, errors.New(int(errno.ConfigError), "チャットモデルが設定されていません")
	}

	res, err := l.svcCtx.Engine.Suggest(l.ctx, userId, query)
	if err != nil {
		l.Logger.Error("logic: generate suggestion failed: ", err)
		return nil, err
	}

	evt := mq.SuggestionCreatedEvent{
		SuggestionId: res.RecordId,
		UserId:       userId,
		Query:        query,
		Success:      res.Success,
		ProductCount: len(res.Products),
		CreatedAt:    time.Now().Unix(),
	}
	if err := mq.PublishSuggestionCreatedEvent(l.svcCtx, evt); err != nil {
		l.Logger.Errorf("publish suggestion event failed: suggestion=%d err=%v", res.RecordId, err)
	}

	if l.svcCtx.AsynqClient != nil && l.svcCtx.Config.HistoryKeep > 0 {
		payload, _ := json.Marshal(mq.PruneHistoryPayload{
			UserId: userId,
			Keep:   l.svcCtx.Config.HistoryKeep,
		})
		task := asynq.NewTask(mq.TaskPruneHistory, payload)
		if _, err := l.svcCtx.AsynqClient.Enqueue(task, asynq.Queue("suggestion")); err != nil {
			l.Logger.Errorf("enqueue history prune failed: user=%d err=%v", userId, err)
		}
	}

	resp = &types.GenerateSuggestionResponse{
		Id:             strconv.FormatInt(res.RecordId, 10),
		Requirements:   res.Requirements,
		SearchKeyword:  res.SearchKeyword,
		Recommendation: res.Recommendation,
		Products:       res.Products,
		Success:        res.Success,
		Error:          res.ErrMsg,
	}
	return
}
