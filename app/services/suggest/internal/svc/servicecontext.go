package svc

import (
	"KasumiAI/app/services/suggest/internal/config"
	suggestiondal "KasumiAI/app/dal/suggestion"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	MysqlConn       sqlx.SqlConn
	SuggestionModel suggestiondal.SuggestionsModel
	Redis           *redis.Redis
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	conn := sqlx.MustNewConn(c.MysqlConf)

	return &ServiceContext{
		Config:          c,
		MysqlConn:       conn,
		SuggestionModel: suggestiondal.NewSuggestionsModel(conn, c.CacheConf),
		Redis:           redis.MustNewRedis(c.RedisConf),
	}
}
