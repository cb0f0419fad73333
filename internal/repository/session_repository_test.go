package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/garajhub/admin-panel/internal/config"
	"github.com/garajhub/admin-panel/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_Lifecycle(t *testing.T) {
	s := NewMemorySessionStore()
	ctx := context.Background()

	id, err := s.Create(ctx, &model.Session{Authenticated: true, Username: "admin"}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sess, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	s := NewMemorySessionStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	id, err := s.Create(ctx, &model.Session{Authenticated: true}, time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_UnknownID(t *testing.T) {
	_, err := NewMemorySessionStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// fakeRedis answers SET/GET/DEL from a map inside a go-redis hook, so the
// client never dials a server.
type fakeRedis struct {
	data map[string]string
	ttls map[string]time.Duration
	fail error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) DialHook(next redis.DialHook) redis.DialHook { return next }

func (f *fakeRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (f *fakeRedis) ProcessHook(_ redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		if f.fail != nil {
			cmd.SetErr(f.fail)
			return f.fail
		}
		args := cmd.Args()
		key := fmt.Sprint(args[1])
		switch cmd.Name() {
		case "set":
			f.data[key] = string(args[2].([]byte))
			if len(args) >= 5 {
				n, _ := args[4].(int64)
				if args[3] == "px" {
					f.ttls[key] = time.Duration(n) * time.Millisecond
				} else {
					f.ttls[key] = time.Duration(n) * time.Second
				}
			}
			cmd.(*redis.StatusCmd).SetVal("OK")
		case "get":
			v, ok := f.data[key]
			if !ok {
				cmd.SetErr(redis.Nil)
				return redis.Nil
			}
			cmd.(*redis.StringCmd).SetVal(v)
		case "del":
			_, ok := f.data[key]
			delete(f.data, key)
			delete(f.ttls, key)
			if ok {
				cmd.(*redis.IntCmd).SetVal(1)
			} else {
				cmd.(*redis.IntCmd).SetVal(0)
			}
		default:
			err := fmt.Errorf("unexpected command %q", cmd.Name())
			cmd.SetErr(err)
			return err
		}
		return nil
	}
}

func newRedisSessionStore(t *testing.T) (*RedisSessionStore, *fakeRedis) {
	t.Helper()
	fake := newFakeRedis()
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	rdb.AddHook(fake)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisSessionStore(rdb), fake
}

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	s, fake := newRedisSessionStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, &model.Session{Authenticated: true, Username: "admin", Role: "superadmin"}, 2*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Contains(t, fake.data, config.SessionKey(id))
	assert.Equal(t, 2*time.Hour, fake.ttls[config.SessionKey(id)])

	sess, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, "superadmin", sess.Role)

	require.NoError(t, s.Delete(ctx, id))
	assert.NotContains(t, fake.data, config.SessionKey(id))
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_UnknownID(t *testing.T) {
	s, _ := newRedisSessionStore(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_CorruptValue(t *testing.T) {
	s, fake := newRedisSessionStore(t)
	fake.data[config.SessionKey("bad")] = "{not json"

	_, err := s.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_BackendError(t *testing.T) {
	s, fake := newRedisSessionStore(t)
	fake.fail = errors.New("connection reset")
	ctx := context.Background()

	_, err := s.Get(ctx, "any")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
	assert.Contains(t, err.Error(), "connection reset")

	_, err = s.Create(ctx, &model.Session{Authenticated: true}, time.Hour)
	require.Error(t, err)
}
