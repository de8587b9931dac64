package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"ecbrates/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "ecbrates:sensor:"
	DefaultChannel   = "ecbrates:sensors"
)

// Publisher mirrors sensor states into Redis hashes and announces every
// update on a pub/sub channel.
type Publisher struct {
	client  *goredis.Client
	prefix  string
	channel string
}

func NewPublisher(addr, password string, db int) (*Publisher, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Publisher{client: client, prefix: DefaultKeyPrefix, channel: DefaultChannel}, nil
}

func (p *Publisher) Publish(ctx context.Context, state domain.SensorState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode sensor state: %w", err)
	}

	value := ""
	if state.State != nil {
		value = strconv.FormatFloat(*state.State, 'f', -1, 64)
	}

	key := p.Key(state.UniqueID)
	_, err = p.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]any{
			"name":                state.Name,
			"pair":                state.Pair,
			"state":               value,
			"available":           strconv.FormatBool(state.Available),
			"unit_of_measurement": state.Unit,
			"device_class":        state.DeviceClass,
			"updated_at":          state.UpdatedAt.UTC().Format(time.RFC3339),
		})
		pipe.Publish(ctx, p.channel, payload)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish sensor %s: %w", state.UniqueID, err)
	}
	return nil
}

func (p *Publisher) Key(id string) string {
	return p.prefix + id
}

func (p *Publisher) Channel() string {
	return p.channel
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
