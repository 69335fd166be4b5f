package repository

import (
	"context"
	"errors"

	"job-seeker/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const jobsCollection = "jobs"

// Document is a schemaless store record. The collections enforce no shape
// beyond what individual operations set; fields this service does not read are
// passed through verbatim in both directions.
type Document = bson.M

type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type JobRepository interface {
	ListAll(ctx context.Context) ([]Document, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Document, error)
	ListByOwnerEmail(ctx context.Context, email string) ([]Document, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Document, error)
	Create(ctx context.Context, job Document) (InsertResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
	ReplaceFields(ctx context.Context, id primitive.ObjectID, fields Document) (UpdateResult, error)
	IncrementApplicants(ctx context.Context, id primitive.ObjectID) error
}

type MongoJobRepository struct {
	coll *mongo.Collection
}

func NewMongoJobRepository(db database.DB) *MongoJobRepository {
	return &MongoJobRepository{coll: db.Collection(jobsCollection)}
}

// ListAll returns the whole collection, unfiltered and unpaginated.
func (r *MongoJobRepository) ListAll(ctx context.Context) ([]Document, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoJobRepository) GetByID(ctx context.Context, id primitive.ObjectID) (Document, error) {
	var doc Document
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ListByOwnerEmail filters on the owning email. An empty email returns the
// unfiltered collection, same as ListAll.
func (r *MongoJobRepository) ListByOwnerEmail(ctx context.Context, email string) ([]Document, error) {
	filter := bson.M{}
	if email != "" {
		filter["userEmail"] = email
	}
	return r.find(ctx, filter)
}

func (r *MongoJobRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Document, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoJobRepository) Create(ctx context.Context, job Document) (InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		return InsertResult{}, err
	}
	return InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoJobRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *MongoJobRepository) ReplaceFields(ctx context.Context, id primitive.ObjectID, fields Document) (UpdateResult, error) {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// IncrementApplicants bumps the applicant counter by one. The apply flow is the
// only caller; the counter is never user-settable here.
func (r *MongoJobRepository) IncrementApplicants(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"jobApplicantsNumber": 1}})
	return err
}

func (r *MongoJobRepository) find(ctx context.Context, filter bson.M) ([]Document, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]Document, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
