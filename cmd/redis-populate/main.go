package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	goredis "github.com/redis/go-redis/v9"

	"github.com/hsajid-cs/redis-populate/internal/adapters/driven/config/env"
	"github.com/hsajid-cs/redis-populate/internal/adapters/driven/config/file"
	jsonreader "github.com/hsajid-cs/redis-populate/internal/adapters/driven/reader/json"
	redisstore "github.com/hsajid-cs/redis-populate/internal/adapters/driven/storage/redis"
	"github.com/hsajid-cs/redis-populate/internal/adapters/driving/cli"
	"github.com/hsajid-cs/redis-populate/internal/core/domain"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driven"
	"github.com/hsajid-cs/redis-populate/internal/core/ports/driving"
	"github.com/hsajid-cs/redis-populate/internal/core/services"
	"github.com/hsajid-cs/redis-populate/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	defaults, err := file.LoadDefaults("")
	if err != nil {
		logger.Warn("Ignoring config file: %v", err)
		defaults = &file.Defaults{}
	}
	keys := defaults.ApplyKeys(domain.DefaultKeys())

	cli.Init(cli.Dependencies{
		Version:      version,
		Keys:         keys,
		Counter:      jsonreader.Counter{},
		ConnectStore: connectStore,
		NewPopulator: func(store driven.Store) driving.Populator {
			readers := &jsonreader.Factory{Buffered: true}
			return services.NewPopulateService(services.NewLoader(store), readers, keys)
		},
		NewPusher: func(store driven.Store, buffered bool) driving.Pusher {
			readers := &jsonreader.Factory{Buffered: buffered}
			return services.NewPushService(services.NewLoader(store), readers, keys)
		},
		NewInspector: func(store driven.Store) driving.Inspector {
			return services.NewInspector(store)
		},
		DefaultInput: defaults.Input,
		DefaultChunk: defaults.Chunk,
		NoStream:     defaults.NoStream,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// connectStore loads connection settings from the environment, dials Redis
// and verifies the connection before handing the store to a command.
func connectStore(ctx context.Context) (driven.Store, error) {
	settings, err := env.Load()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     settings.Addr(),
		Username: settings.Username,
		Password: settings.Password,
	})

	store := redisstore.New(client)
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("connect store: %w", err)
	}
	logger.Debug("Connected to store at %s", settings.Addr())
	return store, nil
}

// exitCode maps error classes to exit statuses: 2 for a missing input file,
// 3 for input that cannot be parsed, 1 for everything else.
func exitCode(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return 2
	case errors.Is(err, domain.ErrInvalidInput):
		return 3
	default:
		return 1
	}
}
