package repository

import (
	"context"
	"fmt"

	"emojitrivia/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TriviaRepo loads the question bank from MongoDB. Items are read once at
// startup; the bank itself is immutable for the life of the process.
type TriviaRepo interface {
	GetAll(ctx context.Context) ([]model.TriviaItem, error)
}

type triviaRepo struct {
	collection *mongo.Collection
}

// NewTriviaRepo creates a repo over the questions collection.
func NewTriviaRepo(db *mongo.Database) TriviaRepo {
	return &triviaRepo{collection: db.Collection("questions")}
}

func (r *triviaRepo) GetAll(ctx context.Context) ([]model.TriviaItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer cursor.Close(ctx)

	var items []model.TriviaItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return items, nil
}
