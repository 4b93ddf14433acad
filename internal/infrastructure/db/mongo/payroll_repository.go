package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aitax/tax-system/internal/core/domain"
)

const collectionPayroll = "payroll_entries"

type PayrollRepository struct {
	col *mongo.Collection
}

func NewPayrollRepository(db *mongo.Database) *PayrollRepository {
	return &PayrollRepository{col: db.Collection(collectionPayroll)}
}

func (r *PayrollRepository) List(ctx context.Context) ([]*domain.PayrollEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.PayrollEntry
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PayrollRepository) FindByID(ctx context.Context, id string) (*domain.PayrollEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var entry domain.PayrollEntry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPayrollNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PayrollRepository) Create(ctx context.Context, e *domain.PayrollEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *PayrollRepository) UpdateStatus(ctx context.Context, id string, status domain.PayrollStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrPayrollNotFound
	}
	return nil
}
