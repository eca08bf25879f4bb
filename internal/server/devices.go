package server

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// deviceTeamTTL matches how long a student keeps the same phone over an
// event week; the selection refreshes on every write.
const deviceTeamTTL = 7 * 24 * time.Hour

// DeviceStore persists each device's sticky "my team" selection in Redis.
// The selection is plain external key-value state: the derivation core
// only ever sees the team ID as a parameter.
type DeviceStore struct {
	rdb *redis.Client
}

func NewDeviceStore(rdb *redis.Client) *DeviceStore {
	return &DeviceStore{rdb: rdb}
}

func (d *DeviceStore) Team(ctx context.Context, deviceID string) (string, error) {
	teamID, err := d.rdb.Get(ctx, deviceKey(deviceID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return teamID, err
}

func (d *DeviceStore) SetTeam(ctx context.Context, deviceID, teamID string) error {
	return d.rdb.Set(ctx, deviceKey(deviceID), teamID, deviceTeamTTL).Err()
}

func (d *DeviceStore) ClearTeam(ctx context.Context, deviceID string) error {
	return d.rdb.Del(ctx, deviceKey(deviceID)).Err()
}

func deviceKey(deviceID string) string {
	return "device:" + deviceID + ":team"
}
