package engine

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"KasumiAI/app/api/suggestion/internal/engine/types"
	"KasumiAI/app/common/snowflake"
	"KasumiAI/app/dal/suggestion"
)

// StoreRecorder writes pipeline results into the suggestions table.
type StoreRecorder struct {
	model suggestion.SuggestionsModel
}

func NewStoreRecorder(model suggestion.SuggestionsModel) *StoreRecorder {
	return &StoreRecorder{model: model}
}

func (r *StoreRecorder) Record(ctx context.Context, userId int64, query string, res *types.Result) (int64, error) {
	analysis, err := json.Marshal(types.Analysis{
		Requirements:  res.Requirements,
		SearchKeyword: res.SearchKeyword,
	})
	if err != nil {
		return 0, fmt.Errorf("marshal analysis: %w", err)
	}

	products := res.Products
	if products == nil {
		products = []types.Product{}
	}
	productData, err := json.Marshal(products)
	if err != nil {
		return 0, fmt.Errorf("marshal products: %w", err)
	}

	success := suggestion.SuccessFalse
	if res.Success {
		success = suggestion.SuccessTrue
	}

	id := snowflake.Next()
	_, err = r.model.Insert(ctx, &suggestion.Suggestions{
		Id:             id,
		UserId:         userId,
		Query:          query,
		AnalysisResult: sql.NullString{String: string(analysis), Valid: true},
		Recommendation: sql.NullString{String: res.Recommendation, Valid: res.Recommendation != ""},
		ProductData:    string(productData),
		Success:        success,
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
