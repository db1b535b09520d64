package middlewares

import (
	"errors"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// ViewerIdentity requires an HS256 bearer token and stores its subject as the
// viewer identity of the request.
func (m *Middlewares) ViewerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get(constvars.HeaderAuthorization))
		if !strings.HasPrefix(header, bearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New(constvars.ErrDevAuthTokenMissing)))
			return
		}

		viewerID, err := utils.ParseViewerJWT(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Info("Middlewares.ViewerIdentity rejected token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithViewerID(r.Context(), viewerID)))
	})
}
