// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"KasumiAI/app/api/suggestion/internal/engine/rainforest"
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

	ChatModel ModelConf

	Rainforest rainforest.Conf

	KafkaConf KafkaConf

	AsynqConf AsynqRedisConf

	LogConf logx.LogConf

	// HistoryKeep 每个用户保留的历史记录上限，0 表示不清理
	HistoryKeep   int64 `json:",default=100"`
	SnowflakeNode int64 `json:",optional"`
}

type ModelConf struct {
	BaseUrl string
	APIKey  string
	Model   string
}

type KafkaConf struct {
	Broker          []string `json:",optional"`
	Group           string   `json:",optional"`
	SuggestionTopic string   `json:",optional"`
}

type AsynqRedisConf struct {
	Addr string `json:",optional"`
}
