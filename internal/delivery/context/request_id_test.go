package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorUID_RoundTrip(t *testing.T) {
	ctx := WithActorUID(context.Background(), "maria_example_com")

	assert.Equal(t, "maria_example_com", GetActorUID(ctx))
}

func TestActorUID_Absent(t *testing.T) {
	assert.Empty(t, GetActorUID(context.Background()))
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
