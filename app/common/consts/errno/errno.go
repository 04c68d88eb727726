package errno

const (
	StatusOK           = 10000
	StatusTokenFreshed = 10001
)

const (
	TokenEmpty = 40000 + iota
	AccessTokenExpired
	RefreshTokenExpired
)

const (
	InternalError = 50000 + iota
	InvalidParam
	UserAlreadyExists
	UserNotFound
	InvalidCredentials
	SuggestionNotFound
)

// 流水线阶段错误
const (
	ConfigError = 60000 + iota
	ExtractionError
	CatalogSearchError
	RankingError
	PersistenceError
)
