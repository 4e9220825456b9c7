package mongodb

import (
	"context"

	"github.com/oportunidadeshoy/migration-tools/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentRepository implements the repositories.DocumentRepository interface
type DocumentRepository struct {
	db *mongo.Database
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *mongo.Database) repositories.DocumentRepository {
	return &DocumentRepository{db: db}
}

// Set creates or overwrites the document at collection+id
func (r *DocumentRepository) Set(ctx context.Context, collection, id string, doc map[string]interface{}) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc, opts)
	return err
}

// Add inserts a document with a MongoDB-assigned ObjectID
func (r *DocumentRepository) Add(ctx context.Context, collection string, doc map[string]interface{}) error {
	_, err := r.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

// CommitBatch submits a group of writes as one ordered bulk operation.
// MongoDB applies an ordered bulk sequentially and stops at the first
// failing write, so a rejected batch never applies later writes.
func (r *DocumentRepository) CommitBatch(ctx context.Context, collection string, writes []repositories.Write) error {
	if len(writes) == 0 {
		return nil
	}
	_, err := r.db.Collection(collection).BulkWrite(ctx, writeModels(writes))
	return err
}

// writeModels maps batch writes to driver write models. Keyed writes become
// upserting replacements so a re-run overwrites the same documents, unkeyed
// writes become plain inserts with driver-assigned ids.
func writeModels(writes []repositories.Write) []mongo.WriteModel {
	models := make([]mongo.WriteModel, 0, len(writes))
	for _, write := range writes {
		if write.ID != "" {
			models = append(models, mongo.NewReplaceOneModel().
				SetFilter(bson.M{"_id": write.ID}).
				SetReplacement(write.Doc).
				SetUpsert(true))
			continue
		}
		models = append(models, mongo.NewInsertOneModel().SetDocument(write.Doc))
	}
	return models
}
