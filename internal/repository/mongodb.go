package repository

import (
	"context"
	"fmt"

	"github.com/m2tx/video_insights/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReportRepository implements ReportRepository using MongoDB.
type MongoReportRepository struct {
	collection *mongo.Collection
}

// NewMongoReportRepository creates a new MongoReportRepository.
// collectionName defaults to "reports" if empty.
func NewMongoReportRepository(db *mongo.Database, collectionName string) *MongoReportRepository {
	if collectionName == "" {
		collectionName = "reports"
	}
	return &MongoReportRepository{
		collection: db.Collection(collectionName),
	}
}

func (r *MongoReportRepository) Save(ctx context.Context, report *model.AnalysisReport) error {
	filter := bson.M{"_id": report.ID}
	update := bson.M{"$set": report}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("repository: upsert report %q: %w", report.ID, err)
	}

	return nil
}

func (r *MongoReportRepository) FindByVideo(ctx context.Context, video string) ([]model.AnalysisReport, error) {
	filter := bson.M{"video": video}
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("repository: find reports for %q: %w", video, err)
	}

	var reports []model.AnalysisReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("repository: decode reports for %q: %w", video, err)
	}

	return reports, nil
}

func (r *MongoReportRepository) Delete(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}

	_, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("repository: delete report %q: %w", id, err)
	}

	return nil
}
