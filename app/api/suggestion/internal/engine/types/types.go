package types

import (
	"fmt"
	"strings"
)

// Requirements 从用户自由文本中抽取出的结构化需求
type Requirements struct {
	Category   string   `json:"category"`
	PriceRange string   `json:"priceRange"`
	Features   []string `json:"features"`
	Brand      string   `json:"brand,omitempty"`
	Size       string   `json:"size,omitempty"`
	Color      string   `json:"color,omitempty"`
	Usage      string   `json:"usage,omitempty"`
	Priority   string   `json:"priority"`
}

const (
	PriorityPrice    = "price"
	PriorityQuality  = "quality"
	PriorityFeatures = "features"
	PriorityBrand    = "brand"
)

// Validate enforces the extraction invariant: category, priceRange and
// priority must be present, priority must be one of the four known values.
// Features is required but may be empty; a missing array is normalized.
func (r *Requirements) Validate() error {
	if r == nil {
		return fmt.Errorf("requirements is nil")
	}
	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("category is required")
	}
	if strings.TrimSpace(r.PriceRange) == "" {
		return fmt.Errorf("priceRange is required")
	}
	switch r.Priority {
	case PriorityPrice, PriorityQuality, PriorityFeatures, PriorityBrand:
	default:
		return fmt.Errorf("priority %q is not one of price|quality|features|brand", r.Priority)
	}
	if r.Features == nil {
		r.Features = []string{}
	}
	return nil
}

// FallbackRequirements is the placeholder recorded when extraction fails.
func FallbackRequirements() Requirements {
	return Requirements{
		Category:   "エラー",
		PriceRange: "エラー",
		Features:   []string{},
		Priority:   PriorityQuality,
	}
}

type Price struct {
	Symbol   string  `json:"symbol"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Raw      string  `json:"raw"`
}

// UnknownPrice is the documented placeholder for an absent price.
func UnknownPrice() Price {
	return Price{
		Symbol:   "¥",
		Value:    0,
		Currency: "JPY",
		Raw:      "価格不明",
	}
}

// Product 归一化后的商品目录条目，所有字段在归一化之后一定有值
type Product struct {
	Position     int     `json:"position"`
	Title        string  `json:"title"`
	Asin         string  `json:"asin"`
	Link         string  `json:"link"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	RatingsTotal int64   `json:"ratings_total"`
	Price        Price   `json:"price"`
	IsPrime      bool    `json:"is_prime"`
}

// Analysis is the serialized analysis_result blob of a suggestion record.
type Analysis struct {
	Requirements  Requirements `json:"requirements"`
	SearchKeyword string       `json:"searchKeyword"`
}

// Result is what one pipeline invocation yields, success or not.
// RecordId is filled once the run has been written to history.
type Result struct {
	RecordId       int64
	Requirements   Requirements
	SearchKeyword  string
	Recommendation string
	Products       []Product
	Success        bool
	ErrMsg         string
}
