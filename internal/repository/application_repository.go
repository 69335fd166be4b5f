package repository

import (
	"context"
	"errors"

	"job-seeker/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const seekersCollection = "seekers"

type ApplicationRepository interface {
	ListBySeeker(ctx context.Context, email string) ([]Document, error)
	FindBySeekerAndJob(ctx context.Context, jobID, email string) (Document, error)
	Create(ctx context.Context, application Document) (InsertResult, error)
	DeleteByJobID(ctx context.Context, jobID string) (DeleteResult, error)
	EnsureIndexes(ctx context.Context) error
}

type MongoApplicationRepository struct {
	coll *mongo.Collection
}

func NewMongoApplicationRepository(db database.DB) *MongoApplicationRepository {
	return &MongoApplicationRepository{coll: db.Collection(seekersCollection)}
}

func (r *MongoApplicationRepository) ListBySeeker(ctx context.Context, email string) ([]Document, error) {
	cur, err := r.coll.Find(ctx, bson.M{"seekerEmail": email})
	if err != nil {
		return nil, err
	}
	out := make([]Document, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoApplicationRepository) FindBySeekerAndJob(ctx context.Context, jobID, email string) (Document, error) {
	var doc Document
	err := r.coll.FindOne(ctx, bson.M{"jobId": jobID, "seekerEmail": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *MongoApplicationRepository) Create(ctx context.Context, application Document) (InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, application)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// DeleteByJobID removes every application referencing the job. The job id is
// matched as the raw string stored at apply time.
func (r *MongoApplicationRepository) DeleteByJobID(ctx context.Context, jobID string) (DeleteResult, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// EnsureIndexes creates the unique (jobId, seekerEmail) index. The apply
// handler still pre-checks for duplicates to return the friendly notice; the
// index closes the race where two concurrent applies both pass that check.
func (r *MongoApplicationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "jobId", Value: 1}, {Key: "seekerEmail", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
