// Seeds the questions collection from the JSON question file, for
// deployments that serve the bank out of MongoDB.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"emojitrivia/internal/bank"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	questionFile := os.Getenv("QUESTION_FILE")
	if questionFile == "" {
		questionFile = "data/database.json"
	}

	items, err := bank.LoadFile(questionFile)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", questionFile, err)
	}
	if len(items) == 0 {
		log.Fatalf("%s contains no trivia items", questionFile)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database("emojitrivia").Collection("questions")

	// Reseed from scratch so repeated runs don't duplicate items.
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear questions collection: %v", err)
	}

	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert questions: %v", err)
	}

	fmt.Printf("Seeded %d trivia items from %s\n", len(items), questionFile)
}
