// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "KasumiAI/app/api/suggestion/internal/logic/suggestion"
	"KasumiAI/app/api/suggestion/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CountHistoryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewCountHistoryLogic(r.Context(), svcCtx)
		resp, err := l.CountHistory()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
