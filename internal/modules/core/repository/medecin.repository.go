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

// MedecinRepository opérations CRUD sur la collection medecins
type MedecinRepository struct {
	db *mongodb.Client
}

func NewMedecinRepository(db *mongodb.Client) *MedecinRepository {
	return &MedecinRepository{db: db}
}

func (r *MedecinRepository) collection() *mongo.Collection {
	return r.db.Collection("medecins")
}

func (r *MedecinRepository) Insert(ctx context.Context, medecin *models.Medecin) error {
	now := time.Now().UTC()
	medecin.ID = primitive.NewObjectID()
	medecin.CreatedAt = now
	medecin.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, medecin)
	return err
}

func (r *MedecinRepository) Update(ctx context.Context, medecin *models.Medecin) error {
	medecin.UpdatedAt = time.Now().UTC()

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": medecin.ID}, medecin)
	return err
}

func (r *MedecinRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Medecin, error) {
	var medecin models.Medecin
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&medecin)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &medecin, nil
}

func (r *MedecinRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Medecin, error) {
	var medecin models.Medecin
	err := r.collection().FindOne(ctx, bson.M{"user_id": userID}).Decode(&medecin)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &medecin, nil
}

// FindAll liste les médecins, filtrés par spécialité si fournie
func (r *MedecinRepository) FindAll(ctx context.Context, specialite string) ([]models.Medecin, error) {
	filter := bson.M{}
	if specialite != "" {
		filter["specialite"] = specialite
	}

	opts := options.Find().SetSort(bson.D{{Key: "specialite", Value: 1}})

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	medecins := []models.Medecin{}
	if err := cursor.All(ctx, &medecins); err != nil {
		return nil, err
	}
	return medecins, nil
}

func (r *MedecinRepository) Count(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{})
}
