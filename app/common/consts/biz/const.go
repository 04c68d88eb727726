package biz

import "time"

type CtxKey string

const (
	USER_KEY CtxKey = "user_id"

	TokenExpire        = time.Hour * 2
	TokenRenewalExpire = time.Hour * 24 * 7

	REFRESHTOKEN = "refresh_token"
	ACCESSTOKEN  = "access_token"
)

const (
	USER_LOGIN_BLOOM     = "user_login_bloom"
	USER_LOGIN_BLOOM_BIT = 1 << 20
)

// 商品提案相关常量
const (
	// SuggestionCount 每次提案固定返回的商品数
	SuggestionCount = 4

	// SearchResultBudget 单次流水线从商品目录拉取的候选数
	SearchResultBudget = 10

	// CatalogPageSize 上游目录 API 每页固定返回数
	CatalogPageSize = 20
)
