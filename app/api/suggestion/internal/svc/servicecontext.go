// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"time"

	"KasumiAI/app/api/suggestion/internal/config"
	"KasumiAI/app/api/suggestion/internal/engine"
	"KasumiAI/app/api/suggestion/internal/engine/extract"
	"KasumiAI/app/api/suggestion/internal/engine/rainforest"
	"KasumiAI/app/api/suggestion/internal/engine/rank"
	"KasumiAI/app/common/consts/biz"
	"KasumiAI/app/common/middleware"
	"KasumiAI/app/common/snowflake"
	suggestiondal "KasumiAI/app/dal/suggestion"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config         config.Config
	AuthMiddleware rest.Middleware

	MysqlConn       sqlx.SqlConn
	SuggestionModel suggestiondal.SuggestionsModel

	// Engine is nil when the chat model could not be initialized; the
	// generate endpoint turns that into a configuration error.
	Engine *engine.Engine

	KafkaWriter *kafka.Writer
	AsynqClient *asynq.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorf("failed to set snowflake node id: %v", err)
		}
	}

	conn := sqlx.MustNewConn(c.MysqlConf)
	suggestionModel := suggestiondal.NewSuggestionsModel(conn, c.CacheConf)

	sc := &ServiceContext{
		Config:          c,
		AuthMiddleware:  middleware.NewAuthMiddleware(c.Auth.TokenConf()).Handle,
		MysqlConn:       conn,
		SuggestionModel: suggestionModel,
	}

	searcher := rainforest.NewClient(c.Rainforest)
	recorder := engine.NewStoreRecorder(suggestionModel)
	logger := logx.WithContext(context.Background())

	cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
	} else {
		extractor, exErr := extract.NewExtractor(context.Background(), logger, cm)
		if exErr != nil {
			logx.Errorw("init requirement extractor failed", logx.Field("err", exErr))
		} else {
			ranker := rank.NewRanker(logger, cm, biz.SuggestionCount)
			sc.Engine = engine.New(logger, extractor, searcher, ranker, recorder, engine.Timeouts{})
			logx.Infow("suggestion engine initialized")
		}
	}

	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.SuggestionTopic != "" {
		sc.KafkaWriter = &kafka.Writer{
			Addr:                   kafka.TCP(c.KafkaConf.Broker...),
			Topic:                  c.KafkaConf.SuggestionTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           5 * time.Millisecond,
		}
	}

	if c.AsynqConf.Addr != "" {
		sc.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: c.AsynqConf.Addr})
	}

	return sc
}
