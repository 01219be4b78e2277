package bootstrap

import (
	"os"

	"github.com/shuldan/standalone/pkg/app"
	"github.com/shuldan/standalone/pkg/config"
	"github.com/shuldan/standalone/pkg/contracts"
	"github.com/shuldan/standalone/pkg/database"
	"github.com/shuldan/standalone/pkg/logger"
	"github.com/shuldan/standalone/pkg/stream"
)

// Bootstrap assembles an application from its collaborators. Order is
// fixed: configuration first, then logger, then the optional binders,
// each registering itself in the injector and its teardown in the hook
// registry.
type Bootstrap struct {
	name         string
	envPrefix    string
	configPaths  []string
	root         string
	mode         contracts.Mode
	loggerOpts   []logger.Option
	withDatabase bool
	withStream   bool
}

func New(name string, envPrefix string, configPaths ...string) *Bootstrap {
	return &Bootstrap{
		name:        name,
		envPrefix:   envPrefix,
		configPaths: configPaths,
		root:        ".",
		mode:        modeFromEnv(),
	}
}

func modeFromEnv() contracts.Mode {
	switch os.Getenv("APP_MODE") {
	case "test":
		return contracts.Test
	case "prod", "production":
		return contracts.Prod
	default:
		return contracts.Dev
	}
}

func (b *Bootstrap) WithRoot(root string) *Bootstrap {
	b.root = root
	return b
}

func (b *Bootstrap) WithMode(mode contracts.Mode) *Bootstrap {
	b.mode = mode
	return b
}

func (b *Bootstrap) WithLogger(opts ...logger.Option) *Bootstrap {
	b.loggerOpts = opts
	return b
}

func (b *Bootstrap) WithDatabase() *Bootstrap {
	b.withDatabase = true
	return b
}

func (b *Bootstrap) WithStream() *Bootstrap {
	b.withStream = true
	return b
}

func (b *Bootstrap) CreateApplication() (contracts.Application, error) {
	cfg, err := config.Load(b.envPrefix, b.configPaths...)
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(b.loggerOpts...)
	if err != nil {
		return nil, err
	}

	inj := app.NewInjector()
	hooks := app.NewHooks()

	if err := app.RegisterInstance[contracts.Config](inj, cfg); err != nil {
		return nil, err
	}
	if err := app.RegisterInstance[contracts.Logger](inj, log); err != nil {
		return nil, err
	}

	if b.withDatabase {
		if _, err := database.Bind(cfg, inj, hooks, log); err != nil {
			return nil, err
		}
	}
	if b.withStream {
		if _, err := stream.Bind(cfg, inj, hooks, log); err != nil {
			return nil, err
		}
	}

	env := app.NewEnvironment(b.root, nil, b.mode)
	return app.New(env, cfg, app.WithInjector(inj), app.WithHooks(hooks)), nil
}
