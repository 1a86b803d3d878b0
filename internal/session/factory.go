package session

import (
	"github.com/redis/go-redis/v9"
)

// Driver identifies a session store implementation.
type Driver string

const (
	DriverFile   Driver = "file"
	DriverMemory Driver = "memory"
	DriverRedis  Driver = "redis"
)

// StoreOption is a functional option for configuring a session store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	dir         string
	redisClient *redis.Client
	redisKey    string
}

// WithDir sets the directory for the file store's session.json.
func WithDir(dir string) StoreOption {
	return func(c *storeConfig) {
		c.dir = dir
	}
}

// WithRedisClient sets the Redis client for the redis store.
func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithRedisKey overrides the Redis key the session is stored under.
func WithRedisKey(key string) StoreOption {
	return func(c *storeConfig) {
		c.redisKey = key
	}
}

// NewStore creates a session Store for the given driver.
// The file driver requires WithDir; the redis driver requires
// WithRedisClient.
func NewStore(driver Driver, opts ...StoreOption) (Store, error) {
	config := &storeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	switch driver {
	case DriverFile:
		if config.dir == "" {
			return nil, ErrInvalidConfig
		}
		return &fileStore{dir: config.dir}, nil

	case DriverMemory:
		return &memoryStore{}, nil

	case DriverRedis:
		if config.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		key := config.redisKey
		if key == "" {
			key = "voxboard:session"
		}
		return &redisStore{client: config.redisClient, key: key}, nil

	default:
		return nil, ErrInvalidDriver
	}
}
