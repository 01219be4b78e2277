package stream

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/shuldan/standalone/pkg/app"
	"github.com/shuldan/standalone/pkg/contracts"
)

// ConfigSection is the configuration subtree consulted by Bind.
const ConfigSection = "stream"

// Bind builds a broker from the "stream" configuration section,
// registers it in the injector and schedules its Close as a shutdown
// hook. A missing section binds the in-memory broker.
func Bind(cfg contracts.Config, inj contracts.Injector, hooks *app.Hooks, log contracts.Logger) (contracts.Broker, error) {
	driver := "memory"
	if section, ok := cfg.GetSub(ConfigSection); ok {
		driver = section.GetString("driver", driver)
	}

	var broker contracts.Broker
	switch driver {
	case "memory":
		broker = NewMemory(log)
	case "redis":
		section, _ := cfg.GetSub(ConfigSection)
		client := redis.NewClient(&redis.Options{
			Addr:     section.GetString("addr", "localhost:6379"),
			Password: section.GetString("password", ""),
			DB:       section.GetInt("db", 0),
		})
		var opts []RedisOption
		if group := section.GetString("group", ""); group != "" {
			opts = append(opts, WithConsumerGroup(group))
		}
		if maxLen := section.GetInt64("maxLen", 0); maxLen > 0 {
			opts = append(opts, WithMaxStreamLength(maxLen, true))
		}
		broker = NewRedis(client, log, opts...)
	default:
		return nil, ErrUnknownDriver.WithDetail("driver", driver)
	}

	if err := app.RegisterInstance[contracts.Broker](inj, broker); err != nil {
		return nil, err
	}
	hooks.Register("stream.close", func(context.Context) error {
		return broker.Close()
	})

	log.Debug("stream broker ready", "driver", driver)
	return broker, nil
}
