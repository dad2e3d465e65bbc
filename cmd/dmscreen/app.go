package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/critfall/dmscreen/internal/api"
	"github.com/critfall/dmscreen/internal/config"
	"github.com/critfall/dmscreen/internal/orchestrators/campaign"
	"github.com/critfall/dmscreen/internal/pkg/clock"
	redisclient "github.com/critfall/dmscreen/internal/redis"
	"github.com/critfall/dmscreen/internal/repositories/tokens"
	"github.com/critfall/dmscreen/internal/store"
)

// app is the assembled object graph behind every subcommand.
type app struct {
	cfg          *config.Config
	store        *store.Store
	orchestrator campaign.Service
}

// buildApp wires config, gateway, store, token repository and
// orchestrator. Every subcommand starts here.
func buildApp() (*app, error) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	holder := &api.TokenHolder{}

	gateway, err := api.NewHTTP(&api.Config{
		BaseURL:    cfg.APIURL,
		Tokens:     holder,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
	})
	if err != nil {
		return nil, err
	}

	st, err := store.New(&store.Config{
		Gateway: gateway,
		Tokens:  holder,
	})
	if err != nil {
		return nil, err
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	tokenRepo, err := tokens.NewRedisRepository(&tokens.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		return nil, err
	}

	orchestrator, err := campaign.NewOrchestrator(&campaign.Config{
		Store:     st,
		TokenRepo: tokenRepo,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:          cfg,
		store:        st,
		orchestrator: orchestrator,
	}, nil
}
