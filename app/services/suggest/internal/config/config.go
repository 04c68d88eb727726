package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type Config struct {
	Name string

	MysqlConf sqlx.SqlConf
	RedisConf redis.RedisConf
	CacheConf cache.CacheConf

	KafkaConf KafkaConf

	AsynqConf       AsynqRedisConf
	AsynqServerConf AsynqServerConf

	LogConf logx.LogConf
}

type KafkaConf struct {
	Broker          []string `json:",optional"`
	Group           string   `json:",optional"`
	SuggestionTopic string   `json:",optional"`
}

type AsynqRedisConf struct {
	Addr string `json:",optional"`
}

type AsynqServerConf struct {
	Concurrency int            `json:",default=4"`
	Queues      map[string]int `json:",optional"`
}
