// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "KasumiAI/app/api/suggestion/internal/logic/suggestion"
	"KasumiAI/app/api/suggestion/internal/svc"
	"KasumiAI/app/api/suggestion/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GenerateSuggestionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GenerateSuggestionRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewGenerateSuggestionLogic(r.Context(), svcCtx)
		resp, err := l.GenerateSuggestion(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
