// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"KasumiAI/app/api/suggestion/internal/svc"
	"KasumiAI/app/api/suggestion/internal/types"
	"KasumiAI/app/common/consts/errno"
	"KasumiAI/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ListHistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListHistoryLogic {
	return &ListHistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListHistoryLogic) ListHistory() (resp *types.ListHistoryResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	rows, err := l.svcCtx.SuggestionModel.FindByUserId(l.ctx, userId)
	if err != nil {
		l.Logger.Error("logic: list history failed: ", err)
		return nil, errors.New(int(errno.InternalError), "履歴の取得に失敗しました")
	}

	items := make([]types.HistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toHistoryItem(row))
	}
	return &types.ListHistoryResponse{Items: items}, nil
}
