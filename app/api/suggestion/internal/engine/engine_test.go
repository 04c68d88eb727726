package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"KasumiAI/app/api/suggestion/internal/engine/extract"
	"KasumiAI/app/api/suggestion/internal/engine/rank"
	"KasumiAI/app/api/suggestion/internal/engine/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type fakeExtractor struct {
	req *types.Requirements
	err error
}

func (f *fakeExtractor) Extract(_ context.Context, _ extract.Input) (*types.Requirements, error) {
	return f.req, f.err
}

type fakeSearcher struct {
	configured bool
	products   []types.Product
	err        error
}

func (f *fakeSearcher) Configured() bool { return f.configured }

func (f *fakeSearcher) Search(_ context.Context, _ string, _ int) ([]types.Product, error) {
	return f.products, f.err
}

type fakeRanker struct {
	narrative string
	asins     []string
	err       error
}

func (f *fakeRanker) Rank(_ context.Context, _ types.Requirements, _ string, _ []types.Product) (string, []string, error) {
	return f.narrative, f.asins, f.err
}

type recordedRun struct {
	userId int64
	query  string
	result types.Result
}

type fakeRecorder struct {
	runs   []recordedRun
	err    error
	nextId int64
}

func (f *fakeRecorder) Record(_ context.Context, userId int64, query string, res *types.Result) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, recordedRun{userId: userId, query: query, result: *res})
	f.nextId++
	return f.nextId, nil
}

func validRequirements() *types.Requirements {
	return &types.Requirements{
		Category:   "ヘッドホン",
		PriceRange: "1万円～3万円",
		Features:   []string{"ノイズキャンセリング", "ワイヤレス"},
		Brand:      "Sony",
		Priority:   types.PriorityQuality,
	}
}

func catalog(n int) []types.Product {
	products := make([]types.Product, n)
	for i := range products {
		products[i] = types.Product{
			Position:     i + 1,
			Title:        fmt.Sprintf("ヘッドホン%d", i+1),
			Asin:         fmt.Sprintf("B00000000%d", i),
			Rating:       4.0,
			RatingsTotal: int64(10 * (i + 1)),
			Price:        types.UnknownPrice(),
		}
	}
	return products
}

func newTestEngine(ex Extractor, se Searcher, ra Ranker, re Recorder) *Engine {
	return New(logx.WithContext(context.Background()), ex, se, ra, re, Timeouts{})
}

func TestSuggest_SuccessRecordsExactlyOnce(t *testing.T) {
	recorder := &fakeRecorder{}
	narrative := "## 推薦\n- **ASIN**: B000000000\n- **ASIN**: B000000001\n- **ASIN**: B000000002\n- **ASIN**: B000000003"
	eng := newTestEngine(
		&fakeExtractor{req: validRequirements()},
		&fakeSearcher{configured: true, products: catalog(6)},
		&fakeRanker{narrative: narrative, asins: []string{"B000000000", "B000000001", "B000000002", "B000000003"}},
		recorder,
	)

	res, err := eng.Suggest(context.Background(), 42, "静かなヘッドホンが欲しい")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if !res.Success {
		t.Fatalf("success = false, errmsg = %q", res.ErrMsg)
	}
	if len(res.Products) != 4 {
		t.Fatalf("len(products) = %d, want 4", len(res.Products))
	}
	if res.RecordId == 0 {
		t.Fatal("record id not propagated")
	}
	if strings.Contains(res.Recommendation, rank.FallbackNote) {
		t.Fatal("fallback note appended without fallback")
	}
	if len(recorder.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(recorder.runs))
	}
	if run := recorder.runs[0]; run.userId != 42 || run.query != "静かなヘッドホンが欲しい" || !run.result.Success {
		t.Fatalf("recorded run wrong: %+v", run)
	}
}

func TestSuggest_FallbackNoteWhenSelectionShort(t *testing.T) {
	eng := newTestEngine(
		&fakeExtractor{req: validRequirements()},
		&fakeSearcher{configured: true, products: catalog(6)},
		&fakeRanker{narrative: "ASIN: B000000000", asins: []string{"B000000000"}},
		&fakeRecorder{},
	)

	res, err := eng.Suggest(context.Background(), 42, "query")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if len(res.Products) != 4 {
		t.Fatalf("len(products) = %d, want 4", len(res.Products))
	}
	if !strings.HasSuffix(res.Recommendation, rank.FallbackNote) {
		t.Fatal("fallback note missing from narrative")
	}
}

func TestSuggest_ExtractionFailurePersisted(t *testing.T) {
	recorder := &fakeRecorder{}
	eng := newTestEngine(
		&fakeExtractor{err: fmt.Errorf("tool payload missing")},
		&fakeSearcher{configured: true},
		&fakeRanker{},
		recorder,
	)

	res, err := eng.Suggest(context.Background(), 7, "query")
	if err != nil {
		t.Fatalf("Suggest() must not leak stage errors, got: %v", err)
	}
	if res.Success {
		t.Fatal("success = true after extraction failure")
	}
	if len(res.Products) != 0 {
		t.Fatalf("failure result has %d products", len(res.Products))
	}
	if res.Requirements.Category != "エラー" {
		t.Fatalf("placeholder requirements not used: %+v", res.Requirements)
	}
	if len(recorder.runs) != 1 {
		t.Fatalf("recorded %d runs, want exactly 1", len(recorder.runs))
	}
	if run := recorder.runs[0]; run.result.Success || len(run.result.Products) != 0 {
		t.Fatalf("recorded failure run wrong: %+v", run.result)
	}
	// the stored narrative carries the user-facing message, not NULL
	if run := recorder.runs[0]; run.result.Recommendation == "" || run.result.Recommendation != res.ErrMsg {
		t.Fatalf("recorded narrative = %q, errmsg = %q", run.result.Recommendation, res.ErrMsg)
	}
}

func TestSuggest_SearchFailureKeepsRequirements(t *testing.T) {
	recorder := &fakeRecorder{}
	eng := newTestEngine(
		&fakeExtractor{req: validRequirements()},
		&fakeSearcher{configured: true, err: fmt.Errorf("status 402")},
		&fakeRanker{},
		recorder,
	)

	res, err := eng.Suggest(context.Background(), 7, "query")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if res.Success {
		t.Fatal("success = true after search failure")
	}
	if res.Requirements.Category != "ヘッドホン" || res.SearchKeyword == "" {
		t.Fatalf("extracted requirements lost on search failure: %+v", res)
	}
	if len(recorder.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(recorder.runs))
	}
}

func TestSuggest_NoProductsIsRecordedFailure(t *testing.T) {
	recorder := &fakeRecorder{}
	eng := newTestEngine(
		&fakeExtractor{req: validRequirements()},
		&fakeSearcher{configured: true, products: []types.Product{}},
		&fakeRanker{},
		recorder,
	)

	res, err := eng.Suggest(context.Background(), 7, "query")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if res.Success || res.ErrMsg == "" {
		t.Fatalf("empty catalog must yield a recorded failure: %+v", res)
	}
	if len(recorder.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(recorder.runs))
	}
	if run := recorder.runs[0]; run.result.Recommendation != res.ErrMsg {
		t.Fatalf("recorded narrative = %q, want the user-facing message", run.result.Recommendation)
	}
}

func TestSuggest_RankingFailurePersisted(t *testing.T) {
	recorder := &fakeRecorder{}
	eng := newTestEngine(
		&fakeExtractor{req: validRequirements()},
		&fakeSearcher{configured: true, products: catalog(5)},
		&fakeRanker{err: fmt.Errorf("model unavailable")},
		recorder,
	)

	res, err := eng.Suggest(context.Background(), 7, "query")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if res.Success {
		t.Fatal("success = true after ranking failure")
	}
	if len(recorder.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(recorder.runs))
	}
}

func TestSuggest_UnconfiguredSearcherRecordsNothing(t *testing.T) {
	recorder := &fakeRecorder{}
	eng := newTestEngine(
		&fakeExtractor{req: validRequirements()},
		&fakeSearcher{configured: false},
		&fakeRanker{},
		recorder,
	)

	if _, err := eng.Suggest(context.Background(), 7, "query"); err == nil {
		t.Fatal("expected configuration error")
	}
	if len(recorder.runs) != 0 {
		t.Fatalf("recorded %d runs before the pipeline could run", len(recorder.runs))
	}
}

func TestSuggest_FewCandidatesReturnsAll(t *testing.T) {
	eng := newTestEngine(
		&fakeExtractor{req: validRequirements()},
		&fakeSearcher{configured: true, products: catalog(2)},
		&fakeRanker{narrative: "ASIN: B000000000", asins: []string{"B000000000"}},
		&fakeRecorder{},
	)

	res, err := eng.Suggest(context.Background(), 7, "query")
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if len(res.Products) != 2 {
		t.Fatalf("len(products) = %d, want all 2 candidates", len(res.Products))
	}
}
