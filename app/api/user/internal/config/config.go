// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	commoncfg "KasumiAI/app/common/config"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	Auth commoncfg.AuthConf

	MysqlConf sqlx.SqlConf
	RedisConf redis.RedisConf
	CacheConf cache.CacheConf

	LogConf logx.LogConf

	SnowflakeNode int64 `json:",optional"`
}
