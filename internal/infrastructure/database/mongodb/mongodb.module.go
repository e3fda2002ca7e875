package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
)

func NewMongoClient(config *MongoConfig) (*Client, error) {
	return NewClient(config)
}

var Module = fx.Options(
	fx.Provide(NewMongoClient),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()

			if err := client.Ping(timeoutCtx); err != nil {
				return fmt.Errorf("MongoDB indisponible au démarrage: %w", err)
			}

			if err := client.EnsureIndexes(timeoutCtx); err != nil {
				return err
			}

			fmt.Printf("[MONGODB] ✅ MongoDB connecté, index vérifiés\n")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})
}
