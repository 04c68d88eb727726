package engine

import (
	"context"
	"time"

	"KasumiAI/app/api/suggestion/internal/engine/extract"
	"KasumiAI/app/api/suggestion/internal/engine/keyword"
	"KasumiAI/app/api/suggestion/internal/engine/rank"
	"KasumiAI/app/api/suggestion/internal/engine/types"
	"KasumiAI/app/common/consts/biz"
	"KasumiAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

// 各阶段的依赖抽象，方便在测试里替换
type (
	Extractor interface {
		Extract(ctx context.Context, in extract.Input) (*types.Requirements, error)
	}

	Searcher interface {
		Configured() bool
		Search(ctx context.Context, searchTerm string, maxResults int) ([]types.Product, error)
	}

	Ranker interface {
		Rank(ctx context.Context, req types.Requirements, searchKeyword string, candidates []types.Product) (string, []string, error)
	}

	Recorder interface {
		Record(ctx context.Context, userId int64, query string, res *types.Result) (int64, error)
	}
)

type Timeouts struct {
	Extract time.Duration
	Search  time.Duration
	Rank    time.Duration
}

func (t *Timeouts) fillDefaults() {
	if t.Extract <= 0 {
		t.Extract = 30 * time.Second
	}
	if t.Search <= 0 {
		t.Search = 20 * time.Second
	}
	if t.Rank <= 0 {
		t.Rank = 60 * time.Second
	}
}

// Engine runs one suggestion pipeline invocation: extract requirements,
// synthesize a keyword, search the catalog, rank, reconcile, record.
// Stages run strictly sequentially; each model/network stage gets its own
// deadline. Every invocation that gets past the configuration check leaves
// exactly one history record, failed runs included.
type Engine struct {
	log       logx.Logger
	extractor Extractor
	searcher  Searcher
	ranker    Ranker
	recorder  Recorder
	timeouts  Timeouts
}

func New(logger logx.Logger, extractor Extractor, searcher Searcher, ranker Ranker, recorder Recorder, timeouts Timeouts) *Engine {
	timeouts.fillDefaults()
	return &Engine{
		log:       logger,
		extractor: extractor,
		searcher:  searcher,
		ranker:    ranker,
		recorder:  recorder,
		timeouts:  timeouts,
	}
}

// Suggest never returns a raw stage error: stage failures become a
// success=false result. A non-nil error means the invocation could not run
// at all (missing catalog credentials) or the run could not be recorded.
func (e *Engine) Suggest(ctx context.Context, userId int64, query string) (*types.Result, error) {
	if !e.searcher.Configured() {
		return nil, errors.New(int(errno.ConfigError), "商品検索サービスが設定されていません")
	}

	extractCtx, cancelExtract := context.WithTimeout(ctx, e.timeouts.Extract)
	defer cancelExtract()
	req, err := e.extractor.Extract(extractCtx, extract.Input{UserID: userId, Query: query})
	if err != nil {
		e.log.Errorf("requirement extraction failed: user_id=%d err=%v", userId, err)
		fallback := types.FallbackRequirements()
		return e.fail(ctx, userId, query, fallback, "", "商品要求の分析に失敗しました。もう一度お試しください。"), nil
	}

	searchKeyword := keyword.Synthesize(*req)
	e.log.Infof("requirements extracted: user_id=%d category=%s keyword=%q", userId, req.Category, searchKeyword)

	searchCtx, cancelSearch := context.WithTimeout(ctx, e.timeouts.Search)
	defer cancelSearch()
	candidates, err := e.searcher.Search(searchCtx, searchKeyword, biz.SearchResultBudget)
	if err != nil {
		e.log.Errorf("catalog search failed: user_id=%d keyword=%q err=%v", userId, searchKeyword, err)
		return e.fail(ctx, userId, query, *req, searchKeyword, "商品検索に失敗しました。しばらくしてからもう一度お試しください。"), nil
	}
	if len(candidates) == 0 {
		e.log.Infof("catalog search returned no products: user_id=%d keyword=%q", userId, searchKeyword)
		return e.fail(ctx, userId, query, *req, searchKeyword, "条件に合う商品が見つかりませんでした。検索条件を変えてお試しください。"), nil
	}

	rankCtx, cancelRank := context.WithTimeout(ctx, e.timeouts.Rank)
	defer cancelRank()
	narrative, selectedAsins, err := e.ranker.Rank(rankCtx, *req, searchKeyword, candidates)
	if err != nil {
		e.log.Errorf("ranking failed: user_id=%d err=%v", userId, err)
		return e.fail(ctx, userId, query, *req, searchKeyword, "商品の推薦に失敗しました。もう一度お試しください。"), nil
	}

	final, supplemented := rank.Reconcile(candidates, selectedAsins, biz.SuggestionCount)
	if supplemented {
		narrative += rank.FallbackNote
	}

	res := &types.Result{
		Requirements:   *req,
		SearchKeyword:  searchKeyword,
		Recommendation: narrative,
		Products:       final,
		Success:        true,
	}

	recordId, err := e.recorder.Record(ctx, userId, query, res)
	if err != nil {
		e.log.Errorf("record suggestion failed: user_id=%d err=%v", userId, err)
		return nil, errors.New(int(errno.PersistenceError), "提案結果の保存に失敗しました")
	}
	res.RecordId = recordId
	return res, nil
}

// fail records a failed run and returns its result. The user-facing message
// doubles as the stored narrative so the history detail of a failed run
// still shows what went wrong. A record write failure here is only logged:
// the user already has a failure to look at.
func (e *Engine) fail(ctx context.Context, userId int64, query string, req types.Requirements, searchKeyword, errMsg string) *types.Result {
	res := &types.Result{
		Requirements:   req,
		SearchKeyword:  searchKeyword,
		Recommendation: errMsg,
		Products:       []types.Product{},
		Success:        false,
		ErrMsg:         errMsg,
	}

	recordId, err := e.recorder.Record(ctx, userId, query, res)
	if err != nil {
		e.log.Errorf("record failed run: user_id=%d err=%v", userId, err)
		return res
	}
	res.RecordId = recordId
	return res
}
