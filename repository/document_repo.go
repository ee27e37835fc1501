package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tieubaoca/pdf-insight-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type DocumentRepo interface {
	CreateDocument(ctx context.Context, doc *types.PdfDocument) (string, error)
	GetDocument(ctx context.Context, id string) (*types.PdfDocument, error)
	PaginateDocuments(ctx context.Context, page, limit int64) ([]*types.PdfDocument, error)
}

type documentRepo struct {
	collection *mongo.Collection
}

func NewDocumentRepo(collection *mongo.Collection) DocumentRepo {
	return &documentRepo{
		collection: collection,
	}
}

func (r *documentRepo) CreateDocument(ctx context.Context, doc *types.PdfDocument) (string, error) {
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", types.NewStoreError("failed to insert document", err)
	}
	objID, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", types.NewStoreError("unexpected inserted id type", nil)
	}
	return objID.Hex(), nil
}

func (r *documentRepo) GetDocument(ctx context.Context, id string) (*types.PdfDocument, error) {
	objID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, types.NewInvalidInput("invalid document id")
	}
	doc := &types.PdfDocument{}
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, types.NewNotFound("PDF not found")
		}
		return nil, types.NewStoreError("failed to retrieve document", err)
	}
	NormalizeDocument(doc)
	return doc, nil
}

func (r *documentRepo) PaginateDocuments(ctx context.Context, page, limit int64) ([]*types.PdfDocument, error) {
	skip := (page - 1) * limit
	// No explicit sort: store-native order, which is insertion order for this
	// insert-only collection.
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, types.NewStoreError("failed to retrieve documents", err)
	}
	defer cursor.Close(ctx)

	docs := make([]*types.PdfDocument, 0)
	for cursor.Next(ctx) {
		doc := &types.PdfDocument{}
		if err := cursor.Decode(doc); err != nil {
			return nil, types.NewStoreError("failed to decode document", err)
		}
		NormalizeDocument(doc)
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, types.NewStoreError("failed to iterate documents", err)
	}
	return docs, nil
}

// NormalizeDocument fills defaults for records that predate the current
// schema so callers never see a partially shaped document.
func NormalizeDocument(doc *types.PdfDocument) {
	if doc.PdfName == "" {
		doc.PdfName = "unknown.pdf"
	}
	if doc.UploadTime.IsZero() {
		doc.UploadTime = time.Now().UTC()
	}
}
