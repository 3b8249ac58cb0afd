package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Interaction types. The tag set is closed.
const (
	InteractionLike    = "like"
	InteractionComment = "comment"
	InteractionShare   = "share"
)

type Interaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	Type      string             `bson:"type" json:"type"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Username  string             `bson:"username" json:"username"`
	Content   string             `bson:"content,omitempty" json:"content,omitempty"`
	CreatedAt string             `bson:"createdAt" json:"createdAt"`
}

// ValidInteractionType reports whether t is one of the closed tag set.
func ValidInteractionType(t string) bool {
	switch t {
	case InteractionLike, InteractionComment, InteractionShare:
		return true
	}
	return false
}
