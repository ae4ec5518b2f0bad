package etl

import (
	"context"
	"time"

	"github.com/BartekS5/itemexport/pkg/logger"
	"github.com/BartekS5/itemexport/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	itemsCollection = "items"
	runsCollection  = "runs"
)

// MongoLoader mirrors an export into MongoDB: items are upserted by ItemId
// and every run is appended to the runs collection.
type MongoLoader struct {
	Client      *mongo.Client
	Database    string
	Transformer *Transformer
}

func NewMongoLoader(client *mongo.Client, database string) *MongoLoader {
	return &MongoLoader{
		Client:      client,
		Database:    database,
		Transformer: NewTransformer(),
	}
}

func (m *MongoLoader) Load(ctx context.Context, result *Result, rows []models.ResultRow) error {
	db := m.Client.Database(m.Database)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	writes := m.writeModels(result.Date, rows)
	if len(writes) > 0 {
		res, err := db.Collection(itemsCollection).BulkWrite(ctx, writes)
		if err != nil {
			return err
		}
		logger.Infof("Mongo BulkWrite: Match %d, Mod %d, Upsert %d", res.MatchedCount, res.ModifiedCount, res.UpsertedCount)
	}

	if _, err := db.Collection(runsCollection).InsertOne(ctx, m.Transformer.RunDocument(result, time.Now().UTC())); err != nil {
		return err
	}
	return nil
}

func (m *MongoLoader) writeModels(exportDate string, rows []models.ResultRow) []mongo.WriteModel {
	writes := make([]mongo.WriteModel, 0, len(rows))
	for _, r := range rows {
		doc := m.Transformer.ToDocument(r, exportDate)
		filter := bson.M{"_id": doc["_id"]}
		update := bson.M{"$set": doc}
		writes = append(writes, mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update).SetUpsert(true))
	}
	return writes
}
