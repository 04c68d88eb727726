// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "KasumiAI/app/api/suggestion/internal/logic/suggestion"
	"KasumiAI/app/api/suggestion/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListHistoryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewListHistoryLogic(r.Context(), svcCtx)
		resp, err := l.ListHistory()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
