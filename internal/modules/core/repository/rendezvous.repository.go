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

// RendezVousRepository opérations sur la collection rendezvous
type RendezVousRepository struct {
	db *mongodb.Client
}

func NewRendezVousRepository(db *mongodb.Client) *RendezVousRepository {
	return &RendezVousRepository{db: db}
}

func (r *RendezVousRepository) collection() *mongo.Collection {
	return r.db.Collection("rendezvous")
}

// dayRange borne une date au jour calendaire UTC [00:00, 24:00)
func dayRange(date time.Time) bson.M {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	return bson.M{"$gte": start, "$lt": end}
}

func (r *RendezVousRepository) Insert(ctx context.Context, rdv *models.RendezVous) error {
	now := time.Now().UTC()
	rdv.ID = primitive.NewObjectID()
	rdv.CreatedAt = now
	rdv.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, rdv)
	return err
}

func (r *RendezVousRepository) Update(ctx context.Context, rdv *models.RendezVous) error {
	rdv.UpdatedAt = time.Now().UTC()

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": rdv.ID}, rdv)
	return err
}

func (r *RendezVousRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *RendezVousRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.RendezVous, error) {
	var rdv models.RendezVous
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&rdv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rdv, nil
}

// FindByPatient rendez-vous d'un patient, du plus récent au plus ancien
func (r *RendezVousRepository) FindByPatient(ctx context.Context, patientID primitive.ObjectID, statut string) ([]models.RendezVous, error) {
	filter := bson.M{"patient_id": patientID}
	if statut != "" {
		filter["statut"] = statut
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "date_rdv", Value: -1},
		{Key: "heure_rdv", Value: -1},
	})

	return r.find(ctx, filter, opts)
}

// FindByMedecin rendez-vous d'un médecin, filtre statut et plage de dates
// optionnels, en ordre chronologique
func (r *RendezVousRepository) FindByMedecin(ctx context.Context, medecinID primitive.ObjectID, statut string, from, to *time.Time) ([]models.RendezVous, error) {
	filter := bson.M{"medecin_id": medecinID}
	if statut != "" {
		filter["statut"] = statut
	}
	if from != nil || to != nil {
		dates := bson.M{}
		if from != nil {
			dates["$gte"] = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		}
		if to != nil {
			dates["$lt"] = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
		}
		filter["date_rdv"] = dates
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "date_rdv", Value: 1},
		{Key: "heure_rdv", Value: 1},
	})

	return r.find(ctx, filter, opts)
}

// FindByDate rendez-vous d'un jour donné, tous médecins ou un seul
func (r *RendezVousRepository) FindByDate(ctx context.Context, date time.Time, medecinID *primitive.ObjectID) ([]models.RendezVous, error) {
	filter := bson.M{"date_rdv": dayRange(date)}
	if medecinID != nil {
		filter["medecin_id"] = *medecinID
	}

	opts := options.Find().SetSort(bson.D{{Key: "heure_rdv", Value: 1}})

	return r.find(ctx, filter, opts)
}

// FindAll liste administrative, filtres statut et date optionnels
func (r *RendezVousRepository) FindAll(ctx context.Context, statut string, date *time.Time, limit int64) ([]models.RendezVous, error) {
	filter := bson.M{}
	if statut != "" {
		filter["statut"] = statut
	}
	if date != nil {
		filter["date_rdv"] = dayRange(*date)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date_rdv", Value: -1}, {Key: "heure_rdv", Value: 1}}).
		SetLimit(limit)

	return r.find(ctx, filter, opts)
}

// OccupiedSlots heures bloquantes d'un médecin pour un jour donné.
// Seuls les statuts demande et confirme occupent un créneau.
func (r *RendezVousRepository) OccupiedSlots(ctx context.Context, medecinID primitive.ObjectID, date time.Time) ([]string, error) {
	filter := bson.M{
		"medecin_id": medecinID,
		"date_rdv":   dayRange(date),
		"statut":     bson.M{"$in": []string{models.StatutDemande, models.StatutConfirme}},
	}

	values, err := r.collection().Distinct(ctx, "heure_rdv", filter)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			slots = append(slots, s)
		}
	}
	return slots, nil
}

func (r *RendezVousRepository) Count(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{})
}

func (r *RendezVousRepository) CountByStatut(ctx context.Context, statut string) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"statut": statut})
}

func (r *RendezVousRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"date_rdv": dayRange(date)})
}

// DistinctPatientIDs patients distincts ayant consulté un médecin
func (r *RendezVousRepository) DistinctPatientIDs(ctx context.Context, medecinID primitive.ObjectID) ([]primitive.ObjectID, error) {
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

func (r *RendezVousRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.RendezVous, error) {
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rdvs := []models.RendezVous{}
	if err := cursor.All(ctx, &rdvs); err != nil {
		return nil, err
	}
	return rdvs, nil
}
