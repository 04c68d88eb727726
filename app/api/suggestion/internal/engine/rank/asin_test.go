package rank

import (
	"reflect"
	"testing"
)

func TestExtractAsins_MixedMarkerForms(t *testing.T) {
	narrative := `## 推薦商品詳細

### 1. ヘッドホンA
- **ASIN**: B012345678
- 推薦理由：音質が良い

### 2. ヘッドホンB
ASIN: B098765432

### 3. ヘッドホンC（ASIN: B011112222）
`
	got := ExtractAsins(narrative)
	want := []string{"B012345678", "B098765432", "B011112222"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractAsins() = %v, want %v", got, want)
	}
}

func TestExtractAsins_DedupesAcrossPatterns(t *testing.T) {
	narrative := `- **ASIN**: B012345678
最終アドバイス: 迷ったら (ASIN: B012345678) がおすすめです。
ASIN: B099999999`

	got := ExtractAsins(narrative)
	want := []string{"B012345678", "B099999999"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractAsins() = %v, want %v", got, want)
	}
}

func TestExtractAsins_NoMarkers(t *testing.T) {
	if got := ExtractAsins("おすすめ商品はありません。"); len(got) != 0 {
		t.Fatalf("ExtractAsins() = %v, want empty", got)
	}
}

func TestExtractAsins_CaseInsensitiveLabel(t *testing.T) {
	got := ExtractAsins("asin: B012345678")
	if len(got) != 1 || got[0] != "B012345678" {
		t.Fatalf("ExtractAsins() = %v", got)
	}
}
