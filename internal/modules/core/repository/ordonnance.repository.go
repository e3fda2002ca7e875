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

// OrdonnanceRepository opérations sur la collection ordonnances
type OrdonnanceRepository struct {
	db *mongodb.Client
}

func NewOrdonnanceRepository(db *mongodb.Client) *OrdonnanceRepository {
	return &OrdonnanceRepository{db: db}
}

func (r *OrdonnanceRepository) collection() *mongo.Collection {
	return r.db.Collection("ordonnances")
}

func (r *OrdonnanceRepository) Insert(ctx context.Context, ordonnance *models.Ordonnance) error {
	now := time.Now().UTC()
	ordonnance.ID = primitive.NewObjectID()
	ordonnance.CreatedAt = now
	ordonnance.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, ordonnance)
	return err
}

func (r *OrdonnanceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ordonnance, error) {
	var ordonnance models.Ordonnance
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&ordonnance)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ordonnance, nil
}

// FindByPatient ordonnances d'un patient, plus récentes d'abord
func (r *OrdonnanceRepository) FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Ordonnance, error) {
	return r.find(ctx, bson.M{"patient_id": patientID})
}

// FindByMedecin ordonnances émises par un médecin
func (r *OrdonnanceRepository) FindByMedecin(ctx context.Context, medecinID primitive.ObjectID) ([]models.Ordonnance, error) {
	return r.find(ctx, bson.M{"medecin_id": medecinID})
}

// SetPDF met en cache le rendu PDF encodé en base64
func (r *OrdonnanceRepository) SetPDF(ctx context.Context, id primitive.ObjectID, pdfData string) error {
	update := bson.M{"$set": bson.M{
		"pdf_data":   pdfData,
		"updated_at": time.Now().UTC(),
	}}

	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *OrdonnanceRepository) Count(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{})
}

func (r *OrdonnanceRepository) find(ctx context.Context, filter bson.M) ([]models.Ordonnance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_ordonnance", Value: -1}})

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ordonnances := []models.Ordonnance{}
	if err := cursor.All(ctx, &ordonnances); err != nil {
		return nil, err
	}
	return ordonnances, nil
}
