package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"shipease/internal/entities"
	"shipease/internal/repository"
	"shipease/internal/service/user"
)

type Repository struct {
	collection *mongo.Collection
}

func New(collection *mongo.Collection) *Repository {
	return &Repository{
		collection: collection,
	}
}

func (r *Repository) Create(ctx context.Context, userModify entities.UserModify) (string, error) {
	res, err := r.collection.InsertOne(ctx, FromDomainModify(&userModify))
	if err != nil {
		if repository.IsMongoDuplicateKey(err) {
			return "", user.ErrUserAlreadyExists
		}
		return "", fmt.Errorf("unexpected user repository create error: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected user repository create error: inserted id %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var doc UserDoc
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if repository.IsMongoNoDocuments(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&doc), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *Repository) GetByType(ctx context.Context, userType *string) ([]entities.User, error) {
	// {type: null} совпадает и с null, и с отсутствующим полем
	var filter bson.M
	if userType == nil {
		filter = bson.M{"type": nil}
	} else {
		filter = bson.M{"type": *userType}
	}

	return r.find(ctx, filter)
}

func (r *Repository) find(ctx context.Context, filter bson.M) ([]entities.User, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	var docs []UserDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(docs), nil
}

func (r *Repository) SetType(ctx context.Context, id string, userType string) (*entities.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, user.ErrInvalidUserID
	}

	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": oid},
		bson.D{{Key: "$set", Value: bson.D{{Key: "type", Value: userType}}}},
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository settype error: %w", err)
	}

	if res.MatchedCount == 0 {
		return nil, user.ErrUserNotFound
	}

	return &entities.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
