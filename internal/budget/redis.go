package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisStartField = "_window_start"

// allowScript keeps the window start and every counter in one hash so a reset
// clears all counters together. Times are unix milliseconds supplied by the
// caller.
var allowScript = redis.NewScript(`
local start = redis.call('HGET', KEYS[1], ARGV[4])
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
if (not start) or (now - tonumber(start) > window) then
	redis.call('DEL', KEYS[1])
	redis.call('HSET', KEYS[1], ARGV[4], ARGV[1])
	redis.call('PEXPIRE', KEYS[1], ARGV[6])
end
local count = tonumber(redis.call('HGET', KEYS[1], ARGV[5]) or '0')
if count >= limit then
	return 0
end
redis.call('HINCRBY', KEYS[1], ARGV[5], 1)
return 1
`)

// Redis is a Store shared by every process using the same namespace.
type Redis struct {
	client redis.Scripter
	key    string
	window time.Duration
	now    Clock
}

// NewRedisFromURL parses a redis:// URL, connects and pings the server.
func NewRedisFromURL(ctx context.Context, redisURL, namespace string) (*Redis, *redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("budget: parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("budget: ping redis: %w", err)
	}

	store, err := NewRedis(client, namespace)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return store, client, nil
}

// NewRedis creates a Redis store over an existing client.
func NewRedis(client redis.Scripter, namespace string, opts ...RedisOption) (*Redis, error) {
	if client == nil {
		return nil, errors.New("budget: redis client must not be nil")
	}
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return nil, errors.New("budget: namespace must not be empty")
	}
	r := &Redis{
		client: client,
		key:    namespace + ":budget",
		window: DefaultWindow,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type RedisOption func(*Redis)

func WithRedisClock(now Clock) RedisOption {
	return func(r *Redis) {
		if now != nil {
			r.now = now
		}
	}
}

func (r *Redis) Allow(ctx context.Context, key string, limit int) (bool, error) {
	if limit <= 0 {
		return false, nil
	}
	res, err := allowScript.Run(ctx, r.client, []string{r.key},
		r.now().UnixMilli(),
		r.window.Milliseconds(),
		limit,
		redisStartField,
		key,
		(2 * r.window).Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("budget: redis allow %q: %w", key, err)
	}
	return res == 1, nil
}
