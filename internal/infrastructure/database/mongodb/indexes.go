package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes crée les index requis sur les collections métier.
// Idempotent : CreateMany ignore les index déjà présents.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		"patients": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "nom", Value: 1}, {Key: "prenom", Value: 1}}},
		},
		"medecins": {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "specialite", Value: 1}}},
		},
		"rendezvous": {
			// Recherche de créneau : le contrôle check-then-insert reste
			// non transactionnel, cet index sert uniquement les lectures.
			{Keys: bson.D{{Key: "medecin_id", Value: 1}, {Key: "date_rdv", Value: 1}, {Key: "heure_rdv", Value: 1}}},
			{Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "date_rdv", Value: -1}}},
			{Keys: bson.D{{Key: "statut", Value: 1}}},
		},
		"dossiers_medicaux": {
			{Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "date_consultation", Value: -1}}},
			{Keys: bson.D{{Key: "medecin_id", Value: 1}}},
		},
		"ordonnances": {
			{Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "date_ordonnance", Value: -1}}},
			{Keys: bson.D{{Key: "medecin_id", Value: 1}}},
		},
		"documents_medicaux": {
			{Keys: bson.D{{Key: "patient_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "dossier_id", Value: 1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_read", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		"sessions": {
			{
				Keys:    bson.D{{Key: "token", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "expires_at", Value: 1}},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		},
	}

	for collection, models := range indexes {
		if err := c.CreateIndexes(ctx, collection, models); err != nil {
			return fmt.Errorf("failed to ensure indexes on %s: %w", collection, err)
		}
	}

	return nil
}
