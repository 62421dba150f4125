package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	// Each request gets its own trace ID.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)

	assert.Empty(t, GetTraceID(context.Background()))
}

func TestUserIDFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), UserIDContextKey, int64(7))
	userID, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.EqualValues(t, 7, userID)

	_, ok = UserIDFromContext(context.Background())
	assert.False(t, ok)

	// A value of the wrong type is treated as absent.
	ctx = context.WithValue(context.Background(), UserIDContextKey, "7")
	_, ok = UserIDFromContext(ctx)
	assert.False(t, ok)
}
