// deps.go wires the config, logger, session store, and API client
// shared by every command.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/voxboard-dev/voxboard/internal/api"
	"github.com/voxboard-dev/voxboard/internal/config"
	"github.com/voxboard-dev/voxboard/internal/log"
	"github.com/voxboard-dev/voxboard/internal/session"
)

// deps holds the wired-up dependencies for one command invocation.
type deps struct {
	home   string
	cfg    *config.Config
	log    *logrus.Entry
	store  session.Store
	client *api.Client
}

// buildDeps reads the config from the voxboard home directory (using
// defaults when none exists yet) and constructs the logger, session
// store, and API client from it.
func buildDeps() (*deps, error) {
	home, err := config.Home()
	if err != nil {
		return nil, err
	}

	cfg, err := config.ReadConfig(home)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	logger, err := log.New(home, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(home, cfg)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.API.BaseURL, store, logger,
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second))

	return &deps{
		home:   home,
		cfg:    cfg,
		log:    logger,
		store:  store,
		client: client,
	}, nil
}

// buildStore constructs the session store named by the config.
func buildStore(home string, cfg *config.Config) (session.Store, error) {
	switch session.Driver(cfg.Session.Driver) {
	case session.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.Session.RedisAddr,
			DB:   cfg.Session.RedisDB,
		})
		return session.NewStore(session.DriverRedis, session.WithRedisClient(rdb))

	case session.DriverMemory:
		return session.NewStore(session.DriverMemory)

	case session.DriverFile, session.Driver(""):
		return session.NewStore(session.DriverFile, session.WithDir(home))

	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Session.Driver)
	}
}

// Close releases the session store.
func (d *deps) Close() {
	d.store.Close()
}

// requireSession loads the persisted session and fails with a hint
// when there is no authenticated user.
func (d *deps) requireSession(ctx context.Context) (session.Session, error) {
	sess, err := d.store.Load(ctx)
	if err != nil {
		return session.Session{}, err
	}
	if !sess.Authenticated() {
		return session.Session{}, fmt.Errorf("not logged in; run: voxboard login <email>")
	}
	return sess, nil
}
