package realtime

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-hrms/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var secret = []byte("ws-secret")

func signAccess(t *testing.T, userID string) string {
	t.Helper()
	return signToken(t, userID, domain.TokenTypeAccess)
}

func signToken(t *testing.T, userID, tokenType string) string {
	t.Helper()
	claims := domain.TokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-" + userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestCanSubscribe(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		channel string
		want    bool
	}{
		{"public employee channel", "u1", ChannelEmployeeAction, true},
		{"batch progress", "u1", PayrollBulkChannel("b1"), true},
		{"batch prefix only", "u1", "payroll-bulk.", false},
		{"own private channel", "u1", UserChannel("u1"), true},
		{"someone else's channel", "u1", UserChannel("u2"), false},
		{"own import channel", "u1", ImportChannel("u1"), true},
		{"unknown channel", "u1", "admin-secrets", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanSubscribe(tt.user, tt.channel))
		})
	}
}

func TestBroadcaster_Broadcast(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	b := NewBroadcaster(rdb, zap.NewNop())

	data := map[string]any{"action": "created", "employee_id": "e1"}
	payload, err := json.Marshal(Message{Channel: ChannelEmployeeAction, Event: EventEmployeeAction, Data: data})
	require.NoError(t, err)

	mock.ExpectPublish(keyPrefix+ChannelEmployeeAction, payload).SetVal(1)

	err = b.Broadcast(context.Background(), ChannelEmployeeAction, EventEmployeeAction, data)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHub_WebsocketSubscribeAndDispatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(nil, zap.NewNop())
	handler := NewHandler(hub, HandlerConfig{Secret: secret}, zap.NewNop())

	r := gin.New()
	RegisterRoutes(r.Group(""), handler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + signAccess(t, "u1")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	readAck := func() ack {
		var a ack
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		require.NoError(t, conn.ReadJSON(&a))
		return a
	}

	require.NoError(t, conn.WriteJSON(inbound{Action: "subscribe", Channel: ChannelEmployeeAction}))
	assert.Equal(t, ack{Event: "subscription_succeeded", Channel: ChannelEmployeeAction}, readAck())

	require.NoError(t, conn.WriteJSON(inbound{Action: "subscribe", Channel: UserChannel("u2")}))
	got := readAck()
	assert.Equal(t, "subscription_error", got.Event)

	assert.Equal(t, 1, hub.subscriberCount(ChannelEmployeeAction))
	assert.Equal(t, 0, hub.subscriberCount(UserChannel("u2")))

	hub.dispatch(ChannelEmployeeAction, []byte(`{"channel":"employee-action","event":"employee.action","data":{"id":"e1"}}`))

	var msg Message
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, EventEmployeeAction, msg.Event)
	assert.Equal(t, map[string]any{"id": "e1"}, msg.Data)
}

func TestHandler_RejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewHub(nil, zap.NewNop()), HandlerConfig{Secret: secret}, zap.NewNop())

	r := gin.New()
	RegisterRoutes(r.Group(""), handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ws", nil))

	assert.Equal(t, 401, w.Code)
}

func TestHandler_RejectsRefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(NewHub(nil, zap.NewNop()), HandlerConfig{Secret: secret}, zap.NewNop())

	r := gin.New()
	RegisterRoutes(r.Group(""), handler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + signToken(t, "u1", domain.TokenTypeRefresh)
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if conn != nil {
		conn.Close()
	}

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}
