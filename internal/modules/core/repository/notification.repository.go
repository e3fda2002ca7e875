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

// NotificationRepository opérations sur la collection notifications
type NotificationRepository struct {
	db *mongodb.Client
}

func NewNotificationRepository(db *mongodb.Client) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) collection() *mongo.Collection {
	return r.db.Collection("notifications")
}

func (r *NotificationRepository) Insert(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = time.Now().UTC()

	_, err := r.collection().InsertOne(ctx, notification)
	return err
}

// FindByUser notifications d'un utilisateur, plus récentes d'abord,
// filtrées par état de lecture si demandé
func (r *NotificationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, isRead *bool, limit int64) ([]models.Notification, error) {
	filter := bson.M{"user_id": userID}
	if isRead != nil {
		filter["is_read"] = *isRead
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	var notification models.Notification
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&notification)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead marque une notification comme lue, sans effet si déjà lue
func (r *NotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_read": true}})
	return err
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"user_id": userID, "is_read": false})
}
