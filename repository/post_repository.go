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

type PostRepository interface {
	List(ctx context.Context, user string) ([]models.Post, error)
	Insert(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	DeleteOwned(ctx context.Context, id primitive.ObjectID, userEmail string) error
	IncCounter(ctx context.Context, id primitive.ObjectID, field string, delta int) error
	SetCounters(ctx context.Context, id primitive.ObjectID, likes, comments, shares int) error
}

type mongoPostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(coll *mongo.Collection) PostRepository {
	return &mongoPostRepository{coll: coll}
}

func (r *mongoPostRepository) List(ctx context.Context, user string) ([]models.Post, error) {
	filter := bson.M{}
	if user != "" {
		filter["user"] = user
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *mongoPostRepository) Insert(ctx context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, post)
	return err
}

func (r *mongoPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteOwned deletes in a single guarded call: the filter matches both id
// and owner, so a zero delete count never reveals which check failed.
func (r *mongoPostRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, userEmail string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "userEmail": userEmail})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPostRepository) IncCounter(ctx context.Context, id primitive.ObjectID, field string, delta int) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPostRepository) SetCounters(ctx context.Context, id primitive.ObjectID, likes, comments, shares int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"likeCount":    likes,
		"commentCount": comments,
		"shareCount":   shares,
	}})
	return err
}
