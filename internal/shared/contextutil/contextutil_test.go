package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetRequestID(ctx))
	assert.NotNil(t, GetLogger(ctx, nil))

	ctx = WithRequestID(ctx, "rid-1")
	ctx = WithUserID(ctx, "user-1")
	ctx = WithRoles(ctx, []string{"hr-manager"})

	meta := ExtractMetadata(ctx)
	assert.Equal(t, "rid-1", meta.RequestID)
	assert.Equal(t, "user-1", meta.UserID)
	assert.Len(t, meta.Fields(), 2)
	assert.True(t, HasRole(ctx, "hr-manager"))
	assert.False(t, HasRole(ctx, "admin"))

	l := zap.NewExample()
	assert.Same(t, l, GetLogger(WithLogger(ctx, l), nil))
}
