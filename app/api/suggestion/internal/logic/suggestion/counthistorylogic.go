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

type CountHistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCountHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CountHistoryLogic {
	return &CountHistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CountHistoryLogic) CountHistory() (resp *types.CountHistoryResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	count, err := l.svcCtx.SuggestionModel.CountByUserId(l.ctx, userId)
	if err != nil {
		l.Logger.Error("logic: count history failed: ", err)
		return nil, errors.New(int(errno.InternalError), "履歴件数の取得に失敗しました")
	}
	return &types.CountHistoryResponse{Count: count}, nil
}
