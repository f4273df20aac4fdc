package database

import (
	"context"
	"fmt"
	"time"

	"management/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ClientOptions builds the driver options for the reservation store. When a
// key is configured it is used as the credential; otherwise whatever auth the
// connection string carries applies.
func ClientOptions(cfg *config.Config) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.DatabaseURL).
		SetAppName("management-service").
		SetServerSelectionTimeout(cfg.QueryTimeout).
		SetReadPreference(readpref.SecondaryPreferred())
	if cfg.DatabaseKey != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.DatabaseUsername,
			Password: cfg.DatabaseKey,
		})
	}
	return opts
}

// Connect opens and pings a client. The caller owns it and must Disconnect.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, ClientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to reservation store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping reservation store: %w", err)
	}
	logger.Info("Connected to reservation store",
		zap.String("database", cfg.ReservationDatabaseID),
		zap.String("collection", cfg.ReservationCollection),
	)
	return client, nil
}

// ReservationCollection returns the collection the reservation service writes to.
func ReservationCollection(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.ReservationDatabaseID).Collection(cfg.ReservationCollection)
}
