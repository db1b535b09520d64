package main

import (
	"context"
	"meetslot-service/internal/app/config"
	"meetslot-service/internal/app/drivers/database"
	"meetslot-service/internal/app/drivers/logger"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := database.NewMongoDB(ctx, driverConfig)
	if err != nil {
		log.Fatalf("Error connecting to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(driverConfig.MongoDB.DbName)
	applied := 0
	for collection, indexes := range database.CollectionIndexes() {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			log.WithFields(logrus.Fields{"collection": collection}).Fatalf("Error creating indexes: %v", err)
		}
		for _, name := range names {
			log.WithFields(logrus.Fields{"collection": collection, "index": name}).Info("Index ensured")
		}
		applied += len(names)
	}

	log.Printf("Applied %d indexes!", applied)
}
