package booking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"shipease/internal/entities"
	"shipease/internal/repository"
	"shipease/internal/service/booking"
)

type Repository struct {
	collection *mongo.Collection
}

func New(collection *mongo.Collection) *Repository {
	return &Repository{
		collection: collection,
	}
}

func (r *Repository) Create(ctx context.Context, fields entities.BookingFields) (string, error) {
	res, err := r.collection.InsertOne(ctx, FromDomainFields(&fields))
	if err != nil {
		return "", fmt.Errorf("unexpected booking repository create error: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected booking repository create error: inserted id %T", res.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, booking.ErrInvalidBookingID
	}

	var doc BookingDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if repository.IsMongoNoDocuments(err) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("unexpected booking repository getbyid error: %w", err)
	}

	return ToDomain(&doc), nil
}

func (r *Repository) List(ctx context.Context, filter entities.BookingFilter) ([]entities.Booking, error) {
	query := bson.M{}

	// опциональные фильтры
	if filter.Email != nil {
		query["email"] = *filter.Email
	}
	if filter.DeliveryMenID != nil {
		query["deliveryMenId"] = *filter.DeliveryMenID
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}

	var docs []BookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("unexpected booking repository list error: %w", err)
	}

	return ToDomainList(docs), nil
}

func (r *Repository) Replace(ctx context.Context, id string, fields entities.BookingFields) (*entities.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, booking.ErrInvalidBookingID
	}

	update := bson.D{{Key: "$set", Value: FromDomainFields(&fields).replaceSet()}}

	return r.updateOne(ctx, oid, update)
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, modify entities.BookingStatusModify) (*entities.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, booking.ErrInvalidBookingID
	}

	set := bson.D{}
	if modify.Status != nil {
		set = append(set, bson.E{Key: "status", Value: *modify.Status})
	}
	if modify.ApproximateDate != nil {
		set = append(set, bson.E{Key: "approximateDate", Value: *modify.ApproximateDate})
	}
	if modify.DeliveryMenID != nil {
		set = append(set, bson.E{Key: "deliveryMenId", Value: *modify.DeliveryMenID})
	}

	return r.updateOne(ctx, oid, bson.D{{Key: "$set", Value: set}})
}

func (r *Repository) updateOne(ctx context.Context, oid primitive.ObjectID, update bson.D) (*entities.UpdateResult, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository update error: %w", err)
	}

	if res.MatchedCount == 0 {
		return nil, booking.ErrBookingNotFound
	}

	return &entities.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, booking.ErrInvalidBookingID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("unexpected booking repository delete error: %w", err)
	}

	return res.DeletedCount, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$status", entities.BookingStatusNone}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("unexpected booking repository count error: %w", err)
	}

	var rows []statusCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("unexpected booking repository count error: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] += row.Count
	}

	return counts, nil
}
