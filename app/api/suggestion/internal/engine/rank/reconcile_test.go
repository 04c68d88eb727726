package rank

import (
	"testing"

	"KasumiAI/app/api/suggestion/internal/engine/types"
)

func product(asin string, rating float64, ratingsTotal int64) types.Product {
	return types.Product{
		Asin:         asin,
		Title:        "商品" + asin,
		Rating:       rating,
		RatingsTotal: ratingsTotal,
		Price:        types.UnknownPrice(),
	}
}

func asins(products []types.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Asin
	}
	return out
}

func TestReconcile_FullSelectionNoFallback(t *testing.T) {
	candidates := []types.Product{
		product("B000000001", 4.0, 10),
		product("B000000002", 4.5, 50),
		product("B000000003", 3.5, 5),
		product("B000000004", 5.0, 500),
		product("B000000005", 4.8, 300),
	}
	picked, fellBack := Reconcile(candidates, []string{"B000000004", "B000000002", "B000000001", "B000000005"}, 4)

	if fellBack {
		t.Fatal("fallback fired for a complete selection")
	}
	// candidate order, not selection order
	want := []string{"B000000001", "B000000002", "B000000004", "B000000005"}
	got := asins(picked)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("picked = %v, want %v", got, want)
		}
	}
}

func TestReconcile_TopsUpByScore(t *testing.T) {
	candidates := []types.Product{
		product("B000000001", 4.0, 10),  // selected
		product("B000000002", 1.0, 1),   // score 1*ln(2) ~ 0.69
		product("B000000003", 4.0, 100), // score 4*ln(101) ~ 18.5
		product("B000000004", 5.0, 0),   // score 0
		product("B000000005", 3.0, 50),  // score 3*ln(51) ~ 11.8
	}
	picked, fellBack := Reconcile(candidates, []string{"B000000001"}, 4)

	if !fellBack {
		t.Fatal("fallback did not fire on shortfall")
	}
	if len(picked) != 4 {
		t.Fatalf("len(picked) = %d, want 4", len(picked))
	}
	want := []string{"B000000001", "B000000003", "B000000005", "B000000002"}
	got := asins(picked)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("picked = %v, want %v", got, want)
		}
	}
}

func TestReconcile_FewerCandidatesThanK(t *testing.T) {
	candidates := []types.Product{
		product("B000000001", 4.0, 10),
		product("B000000002", 2.0, 3),
	}
	picked, _ := Reconcile(candidates, nil, 4)

	if len(picked) != 2 {
		t.Fatalf("len(picked) = %d, want all 2 candidates", len(picked))
	}
}

func TestReconcile_IgnoresUnknownAndDuplicateAsins(t *testing.T) {
	candidates := []types.Product{
		product("B000000001", 4.0, 10),
		product("B000000001", 4.0, 10), // duplicate listing
		product("B000000002", 3.0, 20),
	}
	picked, _ := Reconcile(candidates, []string{"B000000001", "B0FABRICATE", "B000000001"}, 4)

	seen := map[string]int{}
	for _, p := range picked {
		seen[p.Asin]++
	}
	for asin, n := range seen {
		if n != 1 {
			t.Fatalf("asin %s picked %d times", asin, n)
		}
	}
	if _, ok := seen["B0FABRICATE"]; ok {
		t.Fatal("fabricated asin leaked into the final set")
	}
	if len(picked) != 2 {
		t.Fatalf("len(picked) = %d, want 2", len(picked))
	}
}

func TestReconcile_EqualScoresKeepInputOrder(t *testing.T) {
	candidates := []types.Product{
		product("B000000001", 4.0, 10),
		product("B000000002", 4.0, 10),
		product("B000000003", 4.0, 10),
	}
	picked, _ := Reconcile(candidates, nil, 2)

	got := asins(picked)
	if got[0] != "B000000001" || got[1] != "B000000002" {
		t.Fatalf("tie-break order not stable: %v", got)
	}
}
