package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Post struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content       string             `bson:"content" json:"content"`
	User          string             `bson:"user" json:"user"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	CreatedAt     string             `bson:"createdAt" json:"createdAt"` // RFC3339 UTC
	LikeCount     int                `bson:"likeCount" json:"likeCount"`
	CommentCount  int                `bson:"commentCount" json:"commentCount"`
	ShareCount    int                `bson:"shareCount" json:"shareCount"`
	PlaylistID    string             `bson:"playlistId,omitempty" json:"playlistId,omitempty"`
	PlaylistName  string             `bson:"playlistName,omitempty" json:"playlistName,omitempty"`
	PlaylistImage string             `bson:"playlistImage,omitempty" json:"playlistImage,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
}
