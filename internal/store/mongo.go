package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoDocID is the fixed _id of the single record holding the document.
const mongoDocID = "butterfly-document"

// MongoBackend persists the whole document as one record in a collection,
// upserted on every save. The caller owns the client lifecycle.
type MongoBackend struct {
	col *mongo.Collection
}

func NewMongoBackend(col *mongo.Collection) *MongoBackend {
	return &MongoBackend{col: col}
}

type persistedDocument struct {
	ID       string   `bson:"_id"`
	Document Document `bson:"document"`
}

func (m *MongoBackend) Load(ctx context.Context) (*Document, error) {
	var pd persistedDocument
	if err := m.col.FindOne(ctx, bson.M{"_id": mongoDocID}).Decode(&pd); err != nil {
		if err == mongo.ErrNoDocuments {
			return emptyDocument(), nil
		}
		return nil, fmt.Errorf("load mongo document: %w", err)
	}
	pd.Document.normalize()
	return &pd.Document, nil
}

func (m *MongoBackend) Save(ctx context.Context, doc *Document) error {
	pd := persistedDocument{ID: mongoDocID, Document: *doc}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.col.ReplaceOne(ctx, bson.M{"_id": mongoDocID}, pd, opts); err != nil {
		return fmt.Errorf("save mongo document: %w", err)
	}
	return nil
}
