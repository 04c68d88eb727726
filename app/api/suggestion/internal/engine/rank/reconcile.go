package rank

import (
	"math"
	"sort"

	"KasumiAI/app/api/suggestion/internal/engine/types"
)

// FallbackNote is appended to the narrative whenever the reconciler had to
// supplement the model's selection.
const FallbackNote = "\n\n---\n**注意**: 一部の商品は評価と信頼性に基づいて自動選択されました。"

// Reconcile guarantees the final set has exactly min(k, len(candidates))
// entries, each drawn from candidates, each ASIN unique. The model's
// selection is honored first in candidate order; any shortfall is filled by
// desirability score. The returned bool reports whether the fallback fired.
//
// The fallback sort is explicit and does not rely on the catalog's own
// ordering: upstream sort behavior is an uncontrolled external contract.
func Reconcile(candidates []types.Product, selectedAsins []string, k int) ([]types.Product, bool) {
	selected := make(map[string]struct{}, len(selectedAsins))
	for _, asin := range selectedAsins {
		selected[asin] = struct{}{}
	}

	picked := make([]types.Product, 0, k)
	pickedAsins := make(map[string]struct{}, k)
	for _, c := range candidates {
		if len(picked) >= k {
			break
		}
		if _, ok := selected[c.Asin]; !ok {
			continue
		}
		if _, dup := pickedAsins[c.Asin]; dup {
			continue
		}
		picked = append(picked, c)
		pickedAsins[c.Asin] = struct{}{}
	}

	if len(picked) >= k {
		return picked, false
	}

	remaining := make([]types.Product, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := pickedAsins[c.Asin]; dup {
			continue
		}
		remaining = append(remaining, c)
	}
	// stable: equal scores keep input order
	sort.SliceStable(remaining, func(i, j int) bool {
		return score(remaining[i]) > score(remaining[j])
	})

	supplemented := false
	for _, c := range remaining {
		if len(picked) >= k {
			break
		}
		if _, dup := pickedAsins[c.Asin]; dup {
			continue
		}
		picked = append(picked, c)
		pickedAsins[c.Asin] = struct{}{}
		supplemented = true
	}

	return picked, supplemented
}

// score is the deterministic desirability of a candidate. A product with
// zero reviews scores 0 whatever its rating: ln(1+0) = 0.
func score(p types.Product) float64 {
	return p.Rating * math.Log(1+float64(p.RatingsTotal))
}
