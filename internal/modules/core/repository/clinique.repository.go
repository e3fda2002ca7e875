package repository

import (
	"context"
	"sort"

	"clinique-core/internal/infrastructure/database/mongodb"
	"clinique-core/internal/modules/core/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CliniqueRepository accès au document unique de configuration de la
// clinique et à la liste des spécialités.
type CliniqueRepository struct {
	db *mongodb.Client
}

func NewCliniqueRepository(db *mongodb.Client) *CliniqueRepository {
	return &CliniqueRepository{db: db}
}

func (r *CliniqueRepository) configCollection() *mongo.Collection {
	return r.db.Collection("clinique_config")
}

func (r *CliniqueRepository) specialitesCollection() *mongo.Collection {
	return r.db.Collection("specialites")
}

// GetConfig retourne la configuration stockée, ou la configuration
// par défaut quand aucun document n'existe.
func (r *CliniqueRepository) GetConfig(ctx context.Context) (models.CliniqueConfig, error) {
	var config models.CliniqueConfig
	err := r.configCollection().FindOne(ctx, bson.M{}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return models.DefaultCliniqueConfig(), nil
	}
	if err != nil {
		return models.CliniqueConfig{}, err
	}
	return config, nil
}

// UpsertConfig remplace le document de configuration
func (r *CliniqueRepository) UpsertConfig(ctx context.Context, config models.CliniqueConfig) error {
	opts := options.Replace().SetUpsert(true)

	doc := bson.M{
		"nom":         config.Nom,
		"description": config.Description,
		"adresse":     config.Adresse,
		"telephone":   config.Telephone,
		"email":       config.Email,
		"horaires":    config.Horaires,
		"services":    config.Services,
	}

	_, err := r.configCollection().ReplaceOne(ctx, bson.M{}, doc, opts)
	return err
}

// ListSpecialites fusionne la liste de référence et les spécialités
// ajoutées par l'administration, triées et dédupliquées.
func (r *CliniqueRepository) ListSpecialites(ctx context.Context) ([]string, error) {
	values, err := r.specialitesCollection().Distinct(ctx, "nom", bson.M{})
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	merged := []string{}
	for _, s := range models.DefaultSpecialites {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, v := range values {
		if s, ok := v.(string); ok && !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}

	sort.Strings(merged)
	return merged, nil
}

// AddSpecialite ajoute une spécialité si elle n'existe pas déjà
func (r *CliniqueRepository) AddSpecialite(ctx context.Context, nom string) error {
	opts := options.Update().SetUpsert(true)

	_, err := r.specialitesCollection().UpdateOne(ctx,
		bson.M{"nom": nom},
		bson.M{"$setOnInsert": bson.M{"nom": nom}},
		opts,
	)
	return err
}
