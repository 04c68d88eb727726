// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package middleware

import (
	"net/http"

	"KasumiAI/app/common/consts/biz"
	"KasumiAI/app/common/consts/errno"
	"KasumiAI/app/common/token"
	"KasumiAI/app/common/util"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

type AuthMiddleware struct {
	cfg token.Conf
}

func NewAuthMiddleware(cfg token.Conf) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := ""
		if cookie, err := r.Cookie(biz.ACCESSTOKEN); err == nil {
			accessToken = cookie.Value
		} else if headerToken := r.Header.Get(biz.ACCESSTOKEN); headerToken != "" {
			accessToken = headerToken
		}
		refreshToken := ""
		if cookie, err := r.Cookie(biz.REFRESHTOKEN); err == nil {
			refreshToken = cookie.Value
		} else if headerToken := r.Header.Get(biz.REFRESHTOKEN); headerToken != "" {
			refreshToken = headerToken
		}

		if refreshToken == "" || accessToken == "" {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "token is null"))
			return
		}

		claims, err := token.Parse(accessToken, m.cfg.AccessSecret)
		if err == nil {
			util.InjectUserId2Ctx(r, claims.UserID)
			next(w, r)
			return
		}
		if !token.IsExpired(err) {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "invalid token"))
			return
		}

		// access token 过期，尝试用 refresh token 续签
		refClaims, refErr := token.Parse(refreshToken, m.cfg.RefreshSecret)
		if refErr != nil {
			httpx.Error(w, errors.New(int(errno.RefreshTokenExpired), "token refresh failed"))
			return
		}

		pair, _, signErr := token.BuildTokenPair(m.cfg, refClaims.UserID, refClaims.Username)
		if signErr != nil {
			httpx.Error(w, errors.New(int(errno.InternalError), "token refresh failed"))
			return
		}

		util.SetTokenCookies(w, pair.AccessToken, pair.ExpiresIn, pair.RefreshToken)
		util.InjectUserId2Ctx(r, refClaims.UserID)
		next(w, r)
	}
}
