package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"KasumiAI/app/api/suggestion/internal/engine/types"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	extractorModelNodeKey = "requirements_extractor_model"
	extractorToolName     = "extract_product_requirements"
)

// Extractor turns free user text into structured product requirements via a
// single schema-constrained model call. No retry, no streaming: if the model
// does not invoke the expected tool with parseable arguments, extraction
// fails and the failure is the caller's problem.
type Extractor struct {
	log      logx.Logger
	runnable compose.Runnable[Input, *types.Requirements]
	tools    []*schema.ToolInfo
}

type Input struct {
	UserID int64
	Query  string
}

func NewExtractor(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (*Extractor, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	extractTool := buildExtractTool()
	tools := []*schema.ToolInfo{extractTool}

	extractModel := chatModel
	if toolCapable, ok := chatModel.(model.ToolCallingChatModel); ok {
		if modelWithTools, err := toolCapable.WithTools(tools); err != nil {
			logger.Errorf("bind extract tool failed: %v", err)
		} else {
			extractModel = modelWithTools
		}
	}

	chain := compose.NewChain[Input, *types.Requirements]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, in Input) ([]*schema.Message, error) {
		systemPrompt := `あなたは商品提案の専門家です。ユーザーの商品要求を分析して、Amazon.co.jpで検索するのに最適な情報を抽出してください。

重要なポイント：
- 商品カテゴリは具体的かつ検索しやすい名称にする
- 価格帯は日本円で現実的な範囲を指定
- 機能・特徴は検索に役立つキーワードを含める
- ユーザーの最重要視する要素を適切に判定する

必ずツール extract_product_requirements を呼び出して結果を提出し、余計なテキストを出力しないでください。`

		var user strings.Builder
		user.WriteString("ユーザーの商品要求：")
		user.WriteString(in.Query)

		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(user.String()),
		}, nil
	}))

	chain.AppendChatModel(extractModel, compose.WithNodeKey(extractorModelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*types.Requirements, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}

		payload := extractToolArguments(msg)
		if payload == "" {
			return nil, fmt.Errorf("extract tool payload missing")
		}

		var req types.Requirements
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return nil, fmt.Errorf("unmarshal requirements: %w", err)
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("invalid requirements: %w", err)
		}
		return &req, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		log:      logger,
		runnable: runnable,
		tools:    tools,
	}, nil
}

func (e *Extractor) Extract(ctx context.Context, in Input) (*types.Requirements, error) {
	if e == nil || e.runnable == nil {
		return nil, fmt.Errorf("requirement extractor unavailable")
	}

	var opts []compose.Option
	if len(e.tools) > 0 {
		opt := compose.WithChatModelOption(
			model.WithTools(e.tools),
			model.WithToolChoice(schema.ToolChoiceForced),
		).DesignateNode(extractorModelNodeKey)
		opts = append(opts, opt)
	}

	return e.runnable.Invoke(ctx, in, opts...)
}

func extractToolArguments(msg *schema.Message) string {
	for _, call := range msg.ToolCalls {
		if strings.EqualFold(call.Function.Name, extractorToolName) {
			return strings.TrimSpace(call.Function.Arguments)
		}
	}
	return ""
}

func buildExtractTool() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: extractorToolName,
		Desc: "ユーザーの商品要求から必要な情報を抽出して構造化する",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"category": {
				Type:     schema.String,
				Desc:     "商品カテゴリ（例：テレビ、ノートパソコン、スマートフォン）",
				Required: true,
			},
			"priceRange": {
				Type:     schema.String,
				Desc:     "価格帯（例：1万円以下、5万円～10万円、予算なし）",
				Required: true,
			},
			"features": {
				Type: schema.Array,
				Desc: "重要な機能・特徴のリスト",
				ElemInfo: &schema.ParameterInfo{
					Type: schema.String,
				},
				Required: true,
			},
			"brand": {
				Type: schema.String,
				Desc: "希望ブランド（指定がない場合は空文字）",
			},
			"size": {
				Type: schema.String,
				Desc: "サイズ要求（例：50インチ、13インチ、コンパクト）",
			},
			"color": {
				Type: schema.String,
				Desc: "色の要求（指定がない場合は空文字）",
			},
			"usage": {
				Type: schema.String,
				Desc: "使用目的・用途（例：ゲーム、仕事、家族で使用）",
			},
			"priority": {
				Type:     schema.String,
				Desc:     "最重要視する要素",
				Enum:     []string{types.PriorityPrice, types.PriorityQuality, types.PriorityFeatures, types.PriorityBrand},
				Required: true,
			},
		}),
	}
}
