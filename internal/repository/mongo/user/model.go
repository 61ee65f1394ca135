package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
	Name  *string            `bson:"name,omitempty"`
	Type  *string            `bson:"type,omitempty"`
}
