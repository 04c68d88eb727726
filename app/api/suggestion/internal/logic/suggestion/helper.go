package logic

import (
	"encoding/json"
	"strconv"
	"time"

	enginetypes "KasumiAI/app/api/suggestion/internal/engine/types"
	"KasumiAI/app/api/suggestion/internal/types"
	suggestiondal "KasumiAI/app/dal/suggestion"
)

// decodeAnalysis 容忍历史脏数据：解析失败时返回零值而不是报错
func decodeAnalysis(row *suggestiondal.Suggestions) enginetypes.Analysis {
	var analysis enginetypes.Analysis
	if row.AnalysisResult.Valid {
		_ = json.Unmarshal([]byte(row.AnalysisResult.String), &analysis)
	}
	return analysis
}

func decodeProducts(row *suggestiondal.Suggestions) []enginetypes.Product {
	products := []enginetypes.Product{}
	if row.ProductData != "" {
		_ = json.Unmarshal([]byte(row.ProductData), &products)
	}
	return products
}

func toHistoryItem(row *suggestiondal.Suggestions) types.HistoryItem {
	products := decodeProducts(row)
	item := types.HistoryItem{
		Id:           strconv.FormatInt(row.Id, 10),
		Query:        row.Query,
		ProductCount: len(products),
		Success:      row.Success == suggestiondal.SuccessTrue,
		CreatedAt:    row.CreateTime.Format(time.RFC3339),
	}
	if len(products) > 0 {
		item.FirstProductTitle = products[0].Title
	}
	return item
}

func toHistoryDetail(row *suggestiondal.Suggestions) *types.HistoryDetailResponse {
	analysis := decodeAnalysis(row)
	return &types.HistoryDetailResponse{
		Id:             strconv.FormatInt(row.Id, 10),
		Query:          row.Query,
		Requirements:   analysis.Requirements,
		SearchKeyword:  analysis.SearchKeyword,
		Recommendation: row.Recommendation.String,
		Products:       decodeProducts(row),
		Success:        row.Success == suggestiondal.SuccessTrue,
		CreatedAt:      row.CreateTime.Format(time.RFC3339),
	}
}
