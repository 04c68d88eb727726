// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strconv"

	"KasumiAI/app/api/suggestion/internal/svc"
	"KasumiAI/app/api/suggestion/internal/types"
	"KasumiAI/app/common/consts/errno"
	"KasumiAI/app/common/util"
	suggestiondal "KasumiAI/app/dal/suggestion"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetHistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetHistoryLogic {
	return &GetHistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetHistoryLogic) GetHistory(req *types.HistoryDetailRequest) (resp *types.HistoryDetailResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(req.Id, 10, 64)
	if err != nil {
		return nil, errors.New(int(errno.InvalidParam), "invalid suggestion id")
	}

	row, err := l.svcCtx.SuggestionModel.FindOneByIdUserId(l.ctx, id, userId)
	switch err {
	case nil:
		return toHistoryDetail(row), nil
	case suggestiondal.ErrNotFound:
		return nil, errors.New(int(errno.SuggestionNotFound), "提案が見つかりません")
	default:
		l.Logger.Error("logic: get history failed: ", err)
		return nil, errors.New(int(errno.InternalError), "履歴の取得に失敗しました")
	}
}
