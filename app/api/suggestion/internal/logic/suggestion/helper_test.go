package logic

import (
	"database/sql"
	"testing"
	"time"

	suggestiondal "KasumiAI/app/dal/suggestion"
)

func sampleRow() *suggestiondal.Suggestions {
	return &suggestiondal.Suggestions{
		Id:     123456789,
		UserId: 42,
		Query:  "静かなヘッドホンが欲しい",
		AnalysisResult: sql.NullString{
			String: `{"requirements":{"category":"ヘッドホン","priceRange":"1万円～3万円","features":["ノイズキャンセリング"],"priority":"quality"},"searchKeyword":"ヘッドホン ノイズキャンセリング"}`,
			Valid:  true,
		},
		Recommendation: sql.NullString{String: "## 推薦", Valid: true},
		ProductData:    `[{"position":1,"title":"ヘッドホンA","asin":"B000000001","rating":4.5,"ratings_total":120,"price":{"symbol":"¥","value":19800,"currency":"JPY","raw":"¥19,800"},"is_prime":true}]`,
		Success:        suggestiondal.SuccessTrue,
		CreateTime:     time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestToHistoryItem(t *testing.T) {
	item := toHistoryItem(sampleRow())

	if item.Id != "123456789" {
		t.Fatalf("id = %q", item.Id)
	}
	if item.ProductCount != 1 || item.FirstProductTitle != "ヘッドホンA" {
		t.Fatalf("product summary wrong: %+v", item)
	}
	if !item.Success {
		t.Fatal("success flag lost")
	}
}

func TestToHistoryItem_FailedRun(t *testing.T) {
	row := sampleRow()
	row.ProductData = "[]"
	row.Success = suggestiondal.SuccessFalse

	item := toHistoryItem(row)
	if item.Success || item.ProductCount != 0 || item.FirstProductTitle != "" {
		t.Fatalf("failed run summary wrong: %+v", item)
	}
}

func TestToHistoryDetail(t *testing.T) {
	detail := toHistoryDetail(sampleRow())

	if detail.Requirements.Category != "ヘッドホン" {
		t.Fatalf("requirements not decoded: %+v", detail.Requirements)
	}
	if detail.SearchKeyword != "ヘッドホン ノイズキャンセリング" {
		t.Fatalf("searchKeyword = %q", detail.SearchKeyword)
	}
	if len(detail.Products) != 1 || detail.Products[0].Asin != "B000000001" {
		t.Fatalf("products not decoded: %+v", detail.Products)
	}
	if detail.Recommendation != "## 推薦" {
		t.Fatalf("recommendation = %q", detail.Recommendation)
	}
}

func TestDecodeToleratesDirtyBlobs(t *testing.T) {
	row := sampleRow()
	row.AnalysisResult = sql.NullString{String: "not json", Valid: true}
	row.ProductData = "also not json"

	detail := toHistoryDetail(row)
	if detail.Requirements.Category != "" {
		t.Fatalf("dirty analysis produced %+v", detail.Requirements)
	}
	if len(detail.Products) != 0 {
		t.Fatalf("dirty products produced %+v", detail.Products)
	}
}
