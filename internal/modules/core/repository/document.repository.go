package repository

import (
	"context"
	"time"

	"clinique-core/internal/infrastructure/database/mongodb"
	"clinique-core/internal/modules/core/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentRepository opérations sur la collection documents_medicaux
type DocumentRepository struct {
	db *mongodb.Client
}

func NewDocumentRepository(db *mongodb.Client) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) collection() *mongo.Collection {
	return r.db.Collection("documents_medicaux")
}

func (r *DocumentRepository) Insert(ctx context.Context, document *models.DocumentMedical) error {
	now := time.Now().UTC()
	document.ID = primitive.NewObjectID()
	document.CreatedAt = now
	document.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, document)
	return err
}

func (r *DocumentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *DocumentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DocumentMedical, error) {
	var document models.DocumentMedical
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&document)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// FindByPatient documents d'un patient, plus récents d'abord.
// Le contenu base64 n'est pas projeté, il se charge via FindByID.
func (r *DocumentRepository) FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.DocumentMedical, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"file_data": 0})

	cursor, err := r.collection().Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	documents := []models.DocumentMedical{}
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *DocumentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{})
}
