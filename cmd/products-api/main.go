package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/MrEshboboyev/api-versioning/internal/catalog"
	"github.com/MrEshboboyev/api-versioning/internal/httpapi"
	"github.com/MrEshboboyev/api-versioning/pkg/config"
	"github.com/MrEshboboyev/api-versioning/pkg/feature"
	"github.com/MrEshboboyev/api-versioning/pkg/httpserver"
	"github.com/MrEshboboyev/api-versioning/pkg/logger"
	"github.com/MrEshboboyev/api-versioning/pkg/pg"
	"github.com/MrEshboboyev/api-versioning/pkg/targeting"
)

type storageConfig struct {
	Driver      string `env:"STORAGE_DRIVER" envDefault:"memory"` // memory or postgres
	SeedCatalog bool   `env:"SEED_CATALOG" envDefault:"true"`
}

// flagsConfig configures the rollout of the two gated legacy APIs. When
// groups or a percentage are set, the flag is evaluated per caller against
// the request's targeting context; otherwise the enabled bit applies to
// everyone.
type flagsConfig struct {
	V1Enabled    bool     `env:"FEATURE_V1_ENABLED" envDefault:"true"`
	V1Groups     []string `env:"FEATURE_V1_GROUPS" envSeparator:","`
	V1Percentage *int     `env:"FEATURE_V1_PERCENTAGE"`

	V2Enabled    bool     `env:"FEATURE_V2_ENABLED" envDefault:"true"`
	V2Groups     []string `env:"FEATURE_V2_GROUPS" envSeparator:","`
	V2Percentage *int     `env:"FEATURE_V2_PERCENTAGE"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg)
	logger.SetAsDefault(log)

	var storageCfg storageConfig
	config.MustLoad(&storageCfg)

	store, cleanup, err := newStore(ctx, storageCfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if storageCfg.SeedCatalog {
		if err := catalog.Seed(ctx, store, log); err != nil {
			return err
		}
	}

	var flagsCfg flagsConfig
	config.MustLoad(&flagsCfg)
	provider, err := newFlagProvider(flagsCfg)
	if err != nil {
		return err
	}
	gate := feature.NewGate(provider, log)

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)
	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))

	return srv.Run(ctx, httpapi.Router(store, gate, log))
}

func newStore(ctx context.Context, cfg storageConfig, log *slog.Logger) (catalog.Store, func(), error) {
	switch cfg.Driver {
	case "memory":
		return catalog.NewMemoryStore(), func() {}, nil
	case "postgres":
		var pgCfg pg.Config
		config.MustLoad(&pgCfg)

		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return catalog.NewPostgresStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newFlagProvider(cfg flagsConfig) (feature.Provider, error) {
	return feature.NewMemoryProvider(
		&feature.Flag{
			Name:        httpapi.FlagUseV1ProductAPI,
			Description: "exposes the legacy v1 product read API",
			Enabled:     cfg.V1Enabled,
			Strategy:    rolloutStrategy(cfg.V1Groups, cfg.V1Percentage),
		},
		&feature.Flag{
			Name:        httpapi.FlagUseV2ProductAPI,
			Description: "exposes the legacy v2 product read API",
			Enabled:     cfg.V2Enabled,
			Strategy:    rolloutStrategy(cfg.V2Groups, cfg.V2Percentage),
		},
	)
}

func rolloutStrategy(groups []string, percentage *int) feature.Strategy {
	if len(groups) == 0 && percentage == nil {
		return nil
	}
	return feature.NewTargetedStrategy(
		feature.TargetCriteria{
			Groups:     groups,
			Percentage: percentage,
		},
		feature.WithUserIDExtractor(targeting.UserID),
		feature.WithUserGroupsExtractor(targeting.Groups),
	)
}
