package keyword

import (
	"testing"

	"KasumiAI/app/api/suggestion/internal/engine/types"
)

func TestSynthesize_FieldOrder(t *testing.T) {
	tests := []struct {
		name string
		req  types.Requirements
		want string
	}{
		{
			name: "category only",
			req:  types.Requirements{Category: "テレビ", Features: []string{}},
			want: "テレビ",
		},
		{
			name: "brand size color then features",
			req: types.Requirements{
				Category: "headphones",
				Brand:    "Sony",
				Features: []string{"noise cancelling", "wireless"},
			},
			want: "headphones Sony noise cancelling wireless",
		},
		{
			name: "features capped at two",
			req: types.Requirements{
				Category: "ノートパソコン",
				Size:     "13インチ",
				Features: []string{"軽量", "長時間バッテリー", "高解像度"},
			},
			want: "ノートパソコン 13インチ 軽量 長時間バッテリー",
		},
		{
			name: "all optional fields",
			req: types.Requirements{
				Category: "スニーカー",
				Brand:    "ナイキ",
				Size:     "26cm",
				Color:    "白",
				Features: []string{"軽い"},
			},
			want: "スニーカー ナイキ 26cm 白 軽い",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Synthesize(tt.req); got != tt.want {
				t.Fatalf("Synthesize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	req := types.Requirements{
		Category: "headphones",
		Brand:    "Sony",
		Features: []string{"noise cancelling", "wireless"},
	}
	first := Synthesize(req)
	for i := 0; i < 100; i++ {
		if got := Synthesize(req); got != first {
			t.Fatalf("call %d produced %q, first call produced %q", i, got, first)
		}
	}
}
