// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	suggestion "KasumiAI/app/api/suggestion/internal/handler/suggestion"
	"KasumiAI/app/api/suggestion/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/suggestion",
					Handler: suggestion.GenerateSuggestionHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/suggestion/history",
					Handler: suggestion.ListHistoryHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/suggestion/history/:id",
					Handler: suggestion.GetHistoryHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/suggestion/history/:id",
					Handler: suggestion.DeleteHistoryHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/suggestion/count",
					Handler: suggestion.CountHistoryHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api/v1"),
	)
}
