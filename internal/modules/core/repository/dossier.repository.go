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

// DossierRepository opérations sur la collection dossiers (consultations)
type DossierRepository struct {
	db *mongodb.Client
}

func NewDossierRepository(db *mongodb.Client) *DossierRepository {
	return &DossierRepository{db: db}
}

func (r *DossierRepository) collection() *mongo.Collection {
	return r.db.Collection("dossiers_medicaux")
}

func (r *DossierRepository) Insert(ctx context.Context, dossier *models.DossierMedical) error {
	now := time.Now().UTC()
	dossier.ID = primitive.NewObjectID()
	dossier.CreatedAt = now
	dossier.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, dossier)
	return err
}

func (r *DossierRepository) Update(ctx context.Context, dossier *models.DossierMedical) error {
	dossier.UpdatedAt = time.Now().UTC()

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": dossier.ID}, dossier)
	return err
}

func (r *DossierRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.DossierMedical, error) {
	var dossier models.DossierMedical
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&dossier)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dossier, nil
}

// FindByPatient historique des consultations, plus récentes d'abord
func (r *DossierRepository) FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.DossierMedical, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_consultation", Value: -1}})

	cursor, err := r.collection().Find(ctx, bson.M{"patient_id": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	dossiers := []models.DossierMedical{}
	if err := cursor.All(ctx, &dossiers); err != nil {
		return nil, err
	}
	return dossiers, nil
}

func (r *DossierRepository) Count(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{})
}

func (r *DossierRepository) CountByPatient(ctx context.Context, patientID primitive.ObjectID) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"patient_id": patientID})
}

// CountSince consultations créées depuis un instant donné
func (r *DossierRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
}

// DistinctPatientIDsByMedecin patients suivis par un médecin via ses dossiers
func (r *DossierRepository) DistinctPatientIDsByMedecin(ctx context.Context, medecinID primitive.ObjectID) ([]primitive.ObjectID, error) {
	values, err := r.collection().Distinct(ctx, "patient_id", bson.M{"medecin_id": medecinID})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
