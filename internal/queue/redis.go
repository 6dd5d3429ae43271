package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"eprinter/internal/config"
	"eprinter/internal/usecase/interfaces"
)

// RedisPrintQueue hands paid jobs to the print station over a Redis
// stream with a consumer group. Entries are single-field {data: <json>}
// so the payload stays opaque to Redis.

type RedisPrintQueue struct {
	client *redis.Client
	stream string
	group  string
}

var _ interfaces.IPrintQueue = (*RedisPrintQueue)(nil)

// NewRedisPrintQueue connects to Redis and ensures the stream and
// consumer group exist.
func NewRedisPrintQueue(cfg config.QueueConfig) (*RedisPrintQueue, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	// MKSTREAM creates the stream if missing.
	if err := client.XGroupCreateMkStream(ctx, cfg.Stream, cfg.Group, "$").Err(); err != nil && !isBusyGroupErr(err) {
		return nil, fmt.Errorf("xgroup create: %w", err)
	}

	return &RedisPrintQueue{
		client: client,
		stream: cfg.Stream,
		group:  cfg.Group,
	}, nil
}

// go-redis exposes no sentinel for BUSYGROUP, so match the server reply.
func isBusyGroupErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToUpper(err.Error()), "BUSYGROUP")
}

func (q *RedisPrintQueue) Close() error {
	return q.client.Close()
}

// Ping checks redis connectivity.
func (q *RedisPrintQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

// Enqueue appends a job payload to the stream.
func (q *RedisPrintQueue) Enqueue(ctx context.Context, payload []byte) error {
	return q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		Values: map[string]any{"data": string(payload)},
	}).Err()
}

// Dequeue reads one message for the given consumer, blocking up to
// timeout. A nil payload with empty id means nothing was available.
func (q *RedisPrintQueue) Dequeue(ctx context.Context, consumer string, timeout time.Duration) (string, []byte, error) {
	res, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    q.group,
		Consumer: consumer,
		Streams:  []string{q.stream, ">"},
		Count:    1,
		Block:    timeout,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil, nil
		}
		return "", nil, err
	}
	if len(res) == 0 || len(res[0].Messages) == 0 {
		return "", nil, nil
	}

	msg := res[0].Messages[0]
	if v, ok := msg.Values["data"]; ok {
		switch t := v.(type) {
		case string:
			return msg.ID, []byte(t), nil
		case []byte:
			return msg.ID, t, nil
		}
	}
	return msg.ID, nil, nil
}

// Ack marks a message as processed.
func (q *RedisPrintQueue) Ack(ctx context.Context, msgID string) error {
	if msgID == "" {
		return nil
	}
	return q.client.XAck(ctx, q.stream, q.group, msgID).Err()
}
