package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Nil(t, client)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{DB: 0})
	require.NoError(t, err)
	assert.NoError(t, redis.Ping(context.Background(), client))

	mr.Close()
	err = redis.Ping(context.Background(), client)
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}
