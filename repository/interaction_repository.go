package repository

import (
	"context"
	"errors"

	"playlistpulse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InteractionRepository interface {
	FindLike(ctx context.Context, postID primitive.ObjectID, userEmail string) (*models.Interaction, error)
	Insert(ctx context.Context, interaction *models.Interaction) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByPost(ctx context.Context, postID primitive.ObjectID, interactionType string) ([]models.Interaction, error)
	CountByPost(ctx context.Context, postID primitive.ObjectID, interactionType string) (int64, error)
}

type mongoInteractionRepository struct {
	coll *mongo.Collection
}

func NewInteractionRepository(coll *mongo.Collection) InteractionRepository {
	return &mongoInteractionRepository{coll: coll}
}

func (r *mongoInteractionRepository) FindLike(ctx context.Context, postID primitive.ObjectID, userEmail string) (*models.Interaction, error) {
	var interaction models.Interaction
	err := r.coll.FindOne(ctx, bson.M{
		"postId":    postID,
		"userEmail": userEmail,
		"type":      models.InteractionLike,
	}).Decode(&interaction)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *mongoInteractionRepository) Insert(ctx context.Context, interaction *models.Interaction) error {
	if interaction.ID.IsZero() {
		interaction.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, interaction)
	return err
}

func (r *mongoInteractionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoInteractionRepository) ListByPost(ctx context.Context, postID primitive.ObjectID, interactionType string) ([]models.Interaction, error) {
	filter := bson.M{"postId": postID}
	if interactionType != "" {
		filter["type"] = interactionType
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	interactions := []models.Interaction{}
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *mongoInteractionRepository) CountByPost(ctx context.Context, postID primitive.ObjectID, interactionType string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"postId": postID, "type": interactionType})
}
