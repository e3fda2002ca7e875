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

// SessionRepository repli MongoDB du stockage de sessions. Redis reste
// la source primaire, l'index TTL sur expires_at purge les entrées.
type SessionRepository struct {
	db *mongodb.Client
}

func NewSessionRepository(db *mongodb.Client) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) collection() *mongo.Collection {
	return r.db.Collection("sessions")
}

func (r *SessionRepository) Insert(ctx context.Context, session *models.Session) error {
	session.ID = primitive.NewObjectID()
	session.CreatedAt = time.Now().UTC()

	_, err := r.collection().InsertOne(ctx, session)
	return err
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.collection().FindOne(ctx, bson.M{"token": token}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"token": token})
	return err
}

// DeleteByUser invalide toutes les sessions d'un utilisateur,
// utilisé à la désactivation du compte.
func (r *SessionRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection().DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
