// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"

	"KasumiAI/app/api/user/internal/svc"
	"KasumiAI/app/api/user/internal/types"
	"KasumiAI/app/common/consts/errno"
	"KasumiAI/app/common/token"
	model "KasumiAI/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/crypto/bcrypt"
)

type LoginUserLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLoginUserLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginUserLogic {
	return &LoginUserLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginUserLogic) LoginUser(req *types.LoginUserRequest) (resp *types.LoginUserResponse, err error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, errors.New(int(errno.InvalidParam), "username and password are required")
	}

	// 布隆过滤器说没有就一定没有，省一次回源
	if l.svcCtx.Bloom != nil {
		if exists, err := l.svcCtx.Bloom.Exists([]byte(username)); err == nil && !exists {
			return nil, errors.New(int(errno.UserNotFound), "user not found")
		}
	}

	u, err := l.svcCtx.UserModel.FindOneByUsername(l.ctx, username)
	if err == model.ErrNotFound {
		return nil, errors.New(int(errno.UserNotFound), "user not found")
	} else if err != nil {
		l.Logger.Error("logic: login user failed: ", err)
		return nil, errors.New(int(errno.InternalError), "db error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, errors.New(int(errno.InvalidCredentials), "invalid username or password")
	}

	pair, _, err := token.BuildTokenPair(l.svcCtx.Config.Auth.TokenConf(), int64(u.Id), u.Username)
	if err != nil {
		l.Logger.Error("logic: sign token failed: ", err)
		return nil, errors.New(int(errno.InternalError), "sign token failed")
	}

	resp = &types.LoginUserResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         toUserProfile(u),
	}
	return
}
