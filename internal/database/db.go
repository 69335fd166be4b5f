package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// DB is the process-wide document-store handle. It is opened once at bootstrap,
// passed explicitly to every repository, and closed on shutdown.
type DB interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	Collection(name string) *mongo.Collection
}
