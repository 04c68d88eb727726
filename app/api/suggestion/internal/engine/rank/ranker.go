package rank

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"KasumiAI/app/api/suggestion/internal/engine/types"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Ranker asks the model to pick exactly K products from the candidate list
// and to emit a markdown report with an ASIN marker per pick. The model's
// own accounting is never trusted: identifiers are recovered from the text
// by ExtractAsins and the reconciler enforces cardinality afterwards.
type Ranker struct {
	log       logx.Logger
	chatModel model.BaseChatModel
	count     int
}

func NewRanker(logger logx.Logger, chatModel model.BaseChatModel, count int) *Ranker {
	return &Ranker{
		log:       logger,
		chatModel: chatModel,
		count:     count,
	}
}

// Rank returns the narrative markdown and the ASINs recovered from it,
// deduplicated in first-seen order. A short or empty recovery is not an
// error here; the reconciler owns the fallback.
func (r *Ranker) Rank(ctx context.Context, req types.Requirements, searchKeyword string, candidates []types.Product) (string, []string, error) {
	if r == nil || r.chatModel == nil {
		return "", nil, fmt.Errorf("chat model unavailable")
	}

	messages := []*schema.Message{
		schema.SystemMessage(r.systemPrompt()),
		schema.UserMessage(r.userPrompt(req, searchKeyword, candidates)),
	}

	reply, err := r.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", nil, err
	}
	if reply == nil {
		return "", nil, fmt.Errorf("model returned empty message")
	}

	narrative := strings.TrimSpace(reply.Content)
	asins := ExtractAsins(narrative)
	if len(asins) < r.count {
		r.log.Infof("asin extraction recovered %d of %d identifiers, reconciler will top up", len(asins), r.count)
	}
	return narrative, asins, nil
}

func (r *Ranker) systemPrompt() string {
	var sections strings.Builder
	for i := 0; i < r.count; i++ {
		if i > 0 {
			sections.WriteString("\n\n")
		}
		sections.WriteString(fmt.Sprintf(`### %d. 商品名
- **ASIN**: B0XXXXXXXXX
- **推薦理由**：なぜこの商品を選んだか（タイトルから判断できる機能・特徴を含む）
- **価格の妥当性**：価格帯との適合性
- **評価・信頼性**：★評価とレビュー数から判断できる信頼性
- **注意点・検討事項**：商品タイトルから推測できる注意点`, i+1))
	}

	return fmt.Sprintf(`あなたは商品レコメンドの専門家です。以下の商品リストと要求仕様を基に、最適な商品を**必ず%d件だけ**選んで推薦してください。

推薦基準：
1. 要求仕様との適合度（商品タイトルから判断）
2. 価格帯との適合性
3. 商品評価（★の数）
4. レビュー数（信頼性の指標）
5. ユーザーの優先度（価格/品質/機能/ブランド）

**重要な指示：**
- **必ず%d件の商品のみ**を選んで推薦してください
- 各推薦商品について、必ず正確なASIN番号を明記してください
- 商品タイトルと評価から適切に判断してください
- 推薦しない商品については言及しないでください

**出力形式：マークダウン形式で構造化した推薦レポートを作成してください**

以下の構造で回答してください：

## 厳選商品%d件の推薦理由
なぜこの%d件を選んだかの総合的な判断理由

## 推薦商品詳細（%d件のみ）

%s

## 最終購入アドバイス
%d件の中での選択基準とおすすめ順位`,
		r.count, r.count, r.count, r.count, r.count, sections.String(), r.count)
}

func (r *Ranker) userPrompt(req types.Requirements, searchKeyword string, candidates []types.Product) string {
	reqJson, _ := json.MarshalIndent(req, "", "  ")

	var list strings.Builder
	for i, p := range candidates {
		prime := "非対応"
		if p.IsPrime {
			prime = "対応"
		}
		list.WriteString(fmt.Sprintf(`%d. %s
  - ASIN: %s
  - 価格: %s
  - 評価: %.1f★ (%d件のレビュー)
  - Prime: %s
  - リンク: %s
`, i+1, p.Title, p.Asin, p.Price.Raw, p.Rating, p.RatingsTotal, prime, p.Link))
	}

	return fmt.Sprintf(`要求仕様:
%s

検索キーワード: %s

商品一覧（評価順に並んでいます、この中から%d件を厳選してください）:
%s
上記の商品情報を基に、商品タイトルと評価から判断して、ユーザーの要求に最も適した商品を**必ず%d件だけ**選んで詳しく推薦してください。`,
		string(reqJson), searchKeyword, r.count, list.String(), r.count)
}
