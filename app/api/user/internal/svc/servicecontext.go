// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"

	"KasumiAI/app/api/user/internal/config"
	"KasumiAI/app/common/consts/biz"
	"KasumiAI/app/common/snowflake"
	usermodel "KasumiAI/app/dal/user"

	"github.com/zeromicro/go-zero/core/bloom"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	MysqlConn sqlx.SqlConn
	UserModel usermodel.UsersModel
	Bloom     *bloom.Filter
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorf("failed to set snowflake node id: %v", err)
		}
	}

	bf := bloom.New(redis.MustNewRedis(c.RedisConf), biz.USER_LOGIN_BLOOM, biz.USER_LOGIN_BLOOM_BIT)
	conn := sqlx.MustNewConn(c.MysqlConf)
	userModel := usermodel.NewUsersModel(conn, c.CacheConf)
	bloomPreheat(bf, userModel)

	return &ServiceContext{
		Config:    c,
		MysqlConn: conn,
		UserModel: userModel,
		Bloom:     bf,
	}
}

func bloomPreheat(bf *bloom.Filter, userModel usermodel.UsersModel) {
	names, err := userModel.FindAllUsername(context.TODO())
	if err != nil {
		logx.Errorf("bloom preheat failed: %v", err)
		return
	}
	for _, name := range names {
		if err := bf.Add([]byte(name)); err != nil {
			logx.Errorf("bloom preheat add failed: %v", err)
			return
		}
	}
}
