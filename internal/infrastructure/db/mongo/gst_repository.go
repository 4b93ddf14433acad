package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aitax/tax-system/internal/core/domain"
)

const collectionGSTReturns = "gst_returns"

type GSTReturnRepository struct {
	col *mongo.Collection
}

func NewGSTReturnRepository(db *mongo.Database) *GSTReturnRepository {
	return &GSTReturnRepository{col: db.Collection(collectionGSTReturns)}
}

// List returns all returns, most recent period first.
func (r *GSTReturnRepository) List(ctx context.Context) ([]*domain.GSTReturn, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.GSTReturn
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GSTReturnRepository) FindByID(ctx context.Context, id string) (*domain.GSTReturn, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ret domain.GSTReturn
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&ret); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGSTReturnNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *GSTReturnRepository) Create(ctx context.Context, ret *domain.GSTReturn) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, ret)
	return err
}

func (r *GSTReturnRepository) UpdateStatus(ctx context.Context, id string, status domain.GSTReturnStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrGSTReturnNotFound
	}
	return nil
}
