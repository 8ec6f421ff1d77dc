package atdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DBInfo struct {
	DBString string
	DBName   string
}

// MongoConnect membuka koneksi ke MongoDB. Koneksi bersifat lazy, ping
// dilakukan oleh operasi pertama.
func MongoConnect(mconn DBInfo) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mconn.DBString))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %v", err)
	}
	return client.Database(mconn.DBName), nil
}

func GetOneDoc[T any](db *mongo.Database, collection string, filter bson.M) (doc T, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = db.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	return
}

func GetAllDoc[T any](db *mongo.Database, collection string, filter bson.M) (docs T, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cur, err := db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return
	}
	defer cur.Close(ctx)
	err = cur.All(ctx, &docs)
	return
}

// ReplaceOneDoc melakukan upsert dokumen berdasarkan filter.
func ReplaceOneDoc(db *mongo.Database, collection string, filter bson.M, doc interface{}) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	result, err := db.Collection(collection).ReplaceOne(ctx, filter, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to replace document: %v", err)
	}
	return result, nil
}

func UpdateOneDoc(db *mongo.Database, collection string, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": update})
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %v", err)
	}
	return result, nil
}

func DeleteOneDoc(db *mongo.Database, collection string, filter bson.M) (*mongo.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to delete document: %v", err)
	}
	return result, nil
}

// SendErrorResponse menulis response error JSON standar
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "error",
		"message": message,
		"detail":  detail,
	})
}
