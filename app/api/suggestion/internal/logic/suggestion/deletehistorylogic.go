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

type DeleteHistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteHistoryLogic {
	return &DeleteHistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteHistoryLogic) DeleteHistory(req *types.DeleteHistoryRequest) (resp *types.DeleteHistoryResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(req.Id, 10, 64)
	if err != nil {
		return nil, errors.New(int(errno.InvalidParam), "invalid suggestion id")
	}

	switch err := l.svcCtx.SuggestionModel.DeleteByIdUserId(l.ctx, id, userId); err {
	case nil:
		return &types.DeleteHistoryResponse{Deleted: true}, nil
	case suggestiondal.ErrNotFound:
		return nil, errors.New(int(errno.SuggestionNotFound), "提案が見つかりません")
	default:
		l.Logger.Error("logic: delete history failed: ", err)
		return nil, errors.New(int(errno.InternalError), "履歴の削除に失敗しました")
	}
}
