// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"

	"KasumiAI/app/api/user/internal/svc"
	"KasumiAI/app/api/user/internal/types"
	"KasumiAI/app/common/consts/errno"
	"KasumiAI/app/common/snowflake"
	model "KasumiAI/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRegisterUserLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterUserLogic {
	return &RegisterUserLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RegisterUserLogic) RegisterUser(req *types.RegisterUserRequest) (resp *types.RegisterUserResponse, err error) {
	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return nil, errors.New(int(errno.InvalidParam), "username and password are required")
	}

	// 布隆过滤器快速过滤，如果布隆过滤器没找到，说明一定没有这个用户
	if l.svcCtx.Bloom != nil {
		exists, err := l.svcCtx.Bloom.Exists([]byte(username))
		if err != nil {
			l.Logger.Errorf("register user bloom exists failed: %v", err)
		} else if exists {
			if _, err := l.svcCtx.UserModel.FindOneByUsername(l.ctx, username); err == nil {
				return nil, errors.New(int(errno.UserAlreadyExists), "user already exists")
			}
		}
	}

	if _, err := l.svcCtx.UserModel.FindOneByUsername(l.ctx, username); err == nil {
		return nil, errors.New(int(errno.UserAlreadyExists), "user already exists")
	} else if err != model.ErrNotFound {
		l.Logger.Errorf("find user by username failed: %v", err)
		return nil, errors.New(int(errno.InternalError), "db error")
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newId := uint64(snowflake.Next())
	if _, err := l.svcCtx.UserModel.Insert(l.ctx, &model.Users{
		Id:       newId,
		Username: username,
		Password: string(hashedPwd),
	}); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return nil, errors.New(int(errno.UserAlreadyExists), "user already exists")
		}
		l.Logger.Errorf("insert user failed: %v", err)
		return nil, errors.New(int(errno.InternalError), "insert user failed")
	}

	if l.svcCtx.Bloom != nil {
		if err := l.svcCtx.Bloom.Add([]byte(username)); err != nil {
			l.Logger.Errorf("bloom add failed: %v", err)
		}
	}

	created, err := l.svcCtx.UserModel.FindOne(l.ctx, newId)
	if err != nil {
		l.Logger.Error("create user error: ", err)
		return nil, errors.New(int(errno.InternalError), "load created user failed")
	}

	resp = &types.RegisterUserResponse{
		User: toUserProfile(created),
	}
	return
}
