package mongodb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"job-seeker/internal/config"
	"job-seeker/internal/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	uri := strings.TrimSpace(cfg.URI)
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb://%s:%s@%s/?retryWrites=true&w=majority",
			url.QueryEscape(strings.TrimSpace(cfg.User)),
			url.QueryEscape(cfg.Password),
			strings.TrimSpace(cfg.Host),
		)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	cli, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := cli.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(ctx)
		return nil, err
	}

	return &Client{client: cli, db: cli.Database(strings.TrimSpace(cfg.Name))}, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("nil db")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func (c *Client) Collection(name string) *mongo.Collection {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Collection(name)
}
