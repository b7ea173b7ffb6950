package redis_test

import (
	"context"
	"testing"

	"github.com/SscSPs/car_insurance_app/internal/platform/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyURLDisablesRedis(t *testing.T) {
	client, err := redis.New(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNew_RejectsMalformedURL(t *testing.T) {
	_, err := redis.New(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}
