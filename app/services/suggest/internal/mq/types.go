package mq

// SuggestionCreatedEvent 与 API 侧的事件格式保持一致
type SuggestionCreatedEvent struct {
	SuggestionId int64  `json:"suggestion_id"`
	UserId       int64  `json:"user_id"`
	Query        string `json:"query"`
	Success      bool   `json:"success"`
	ProductCount int    `json:"product_count"`
	CreatedAt    int64  `json:"created_at"`
}

const TaskPruneHistory = "suggestion:prune_history"

type PruneHistoryPayload struct {
	UserId int64 `json:"user_id"`
	Keep   int64 `json:"keep"`
}
