package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestRemember(t *testing.T) {
	ctx := context.Background()

	t.Run("hit skips loader", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := New(rdb)
		mock.ExpectGet("departments:options").SetVal(`[{"id":"1","name":"Finance"}]`)

		got, err := Remember(ctx, c, "departments:options", time.Hour, func(context.Context) ([]option, error) {
			t.Fatal("loader must not run on a hit")
			return nil, nil
		})

		require.NoError(t, err)
		assert.Equal(t, []option{{ID: "1", Name: "Finance"}}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss loads and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := New(rdb)
		mock.ExpectGet("departments:options").RedisNil()
		mock.ExpectSet("departments:options", []byte(`[{"id":"2","name":"HR"}]`), time.Hour).SetVal("OK")

		got, err := Remember(ctx, c, "departments:options", time.Hour, func(context.Context) ([]option, error) {
			return []option{{ID: "2", Name: "HR"}}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "HR", got[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("loader error is returned and nothing stored", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		c := New(rdb)
		mock.ExpectGet("k").RedisNil()

		_, err := Remember(ctx, c, "k", time.Hour, func(context.Context) ([]option, error) {
			return nil, errors.New("db down")
		})

		assert.EqualError(t, err, "db down")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil client always loads", func(t *testing.T) {
		c := New(nil)
		got, err := Remember(ctx, c, "k", time.Hour, func(context.Context) (int, error) { return 7, nil })

		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})
}

func TestInvalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := New(rdb)
	mock.ExpectDel("a", "b").SetVal(2)

	c.Invalidate(context.Background(), "a", "b")

	assert.NoError(t, mock.ExpectationsWereMet())
}
