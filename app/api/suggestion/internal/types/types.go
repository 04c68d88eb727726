// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import enginetypes "KasumiAI/app/api/suggestion/internal/engine/types"

type GenerateSuggestionRequest struct {
	Query string `json:"query"`
}

type GenerateSuggestionResponse struct {
	Id             string                   `json:"id"`
	Requirements   enginetypes.Requirements `json:"requirements"`
	SearchKeyword  string                   `json:"searchKeyword"`
	Recommendation string                   `json:"recommendation"`
	Products       []enginetypes.Product    `json:"products"`
	Success        bool                     `json:"success"`
	Error          string                   `json:"error,omitempty"`
}

type HistoryItem struct {
	Id                string `json:"id"`
	Query             string `json:"query"`
	ProductCount      int    `json:"productCount"`
	FirstProductTitle string `json:"firstProductTitle,omitempty"`
	Success           bool   `json:"success"`
	CreatedAt         string `json:"createdAt"`
}

type ListHistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

type HistoryDetailRequest struct {
	Id string `path:"id"`
}

type HistoryDetailResponse struct {
	Id             string                   `json:"id"`
	Query          string                   `json:"query"`
	Requirements   enginetypes.Requirements `json:"requirements"`
	SearchKeyword  string                   `json:"searchKeyword"`
	Recommendation string                   `json:"recommendation"`
	Products       []enginetypes.Product    `json:"products"`
	Success        bool                     `json:"success"`
	CreatedAt      string                   `json:"createdAt"`
}

type DeleteHistoryRequest struct {
	Id string `path:"id"`
}

type DeleteHistoryResponse struct {
	Deleted bool `json:"deleted"`
}

type CountHistoryResponse struct {
	Count int64 `json:"count"`
}
