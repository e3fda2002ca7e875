package repository

import (
	"context"
	"regexp"
	"time"

	"clinique-core/internal/infrastructure/database/mongodb"
	"clinique-core/internal/modules/core/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PatientRepository opérations CRUD sur la collection patients
type PatientRepository struct {
	db *mongodb.Client
}

func NewPatientRepository(db *mongodb.Client) *PatientRepository {
	return &PatientRepository{db: db}
}

func (r *PatientRepository) collection() *mongo.Collection {
	return r.db.Collection("patients")
}

func (r *PatientRepository) Insert(ctx context.Context, patient *models.Patient) error {
	now := time.Now().UTC()
	patient.ID = primitive.NewObjectID()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, patient)
	return err
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	patient.UpdatedAt = time.Now().UTC()

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": patient.ID}, patient)
	return err
}

func (r *PatientRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error) {
	var patient models.Patient
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *PatientRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Patient, error) {
	var patient models.Patient
	err := r.collection().FindOne(ctx, bson.M{"user_id": userID}).Decode(&patient)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// FindByIDs charge un lot de patients, indexés par ID hexadécimal
func (r *PatientRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[string]models.Patient, error) {
	result := map[string]models.Patient{}
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := r.collection().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	patients := []models.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}

	for _, p := range patients {
		result[p.ID.Hex()] = p
	}
	return result, nil
}

// FindAll liste paginée, triée par nom
func (r *PatientRepository) FindAll(ctx context.Context, limit, skip int64) ([]models.Patient, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "nom", Value: 1}, {Key: "prenom", Value: 1}}).
		SetLimit(limit).
		SetSkip(skip)

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	patients := []models.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// Search recherche insensible à la casse par sous-chaîne sur
// nom, prénom, email et téléphone
func (r *PatientRepository) Search(ctx context.Context, query string, limit int64) ([]models.Patient, error) {
	escaped := regexp.QuoteMeta(query)
	pattern := primitive.Regex{Pattern: escaped, Options: "i"}

	filter := bson.M{"$or": []bson.M{
		{"nom": pattern},
		{"prenom": pattern},
		{"email": pattern},
		{"telephone": pattern},
	}}

	opts := options.Find().
		SetSort(bson.D{{Key: "nom", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	patients := []models.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientRepository) Count(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{})
}

// CountWithAccount compte les patients liés à un compte utilisateur
func (r *PatientRepository) CountWithAccount(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"user_id": bson.M{"$ne": nil}})
}
