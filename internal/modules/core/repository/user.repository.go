package repository

import (
	"context"
	"time"

	"clinique-core/internal/infrastructure/database/mongodb"
	"clinique-core/internal/modules/core/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository opérations CRUD sur la collection users.
// Les recherches qui ne trouvent rien retournent (nil, nil).
type UserRepository struct {
	db *mongodb.Client
}

func NewUserRepository(db *mongodb.Client) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) collection() *mongo.Collection {
	return r.db.Collection("users")
}

// Insert crée l'utilisateur et renseigne son ID généré
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.collection().InsertOne(ctx, user)
	return err
}

// Update remplace le document complet identifié par son ID
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()

	_, err := r.collection().ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll liste les utilisateurs, filtres optionnels par rôle et statut actif
func (r *UserRepository) FindAll(ctx context.Context, role string, isActive *bool) ([]models.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	if isActive != nil {
		filter["is_active"] = *isActive
	}

	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count compte les utilisateurs d'un rôle, actifs uniquement si demandé
func (r *UserRepository) Count(ctx context.Context, role string, activeOnly bool) (int64, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	if activeOnly {
		filter["is_active"] = true
	}
	return r.collection().CountDocuments(ctx, filter)
}
