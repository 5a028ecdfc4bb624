package realtime

import (
	"net/http"
	"strings"

	"go-hrms/internal/domain"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type HandlerConfig struct {
	Secret         []byte
	Denylist       middleware.TokenDenylist
	AllowedOrigins []string
}

type Handler struct {
	hub      *Hub
	cfg      HandlerConfig
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewHandler(hub *Hub, cfg HandlerConfig, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("realtime.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("realtime.handler")
	}

	h := &Handler{hub: hub, cfg: cfg, logger: l}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, allowed := range h.cfg.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Serve authenticates with ?token= since browsers cannot set headers on a
// websocket handshake, then hands the connection to the hub.
func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if bearer, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
			token = strings.TrimSpace(bearer)
		}
	}
	if token == "" {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	claims, err := middleware.ParseToken(token, h.cfg.Secret)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if claims.TokenType != domain.TokenTypeAccess {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	if h.cfg.Denylist != nil {
		revoked, err := h.cfg.Denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err == nil && revoked {
			response.FromError(c, apperror.ErrUnauthorized)
			return
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.logger.Debug("websocket connected", zap.String("user_id", claims.UserID))
	h.hub.Attach(conn, claims.UserID)
}
