package mq

// SuggestionCreatedEvent 提案落库之后发出的事件，worker 侧消费做审计与统计
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
