package database

import (
	"context"
	"log"
	"time"

	"agencysite/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// Collection names.
const (
	PricingCollection         = "pricing"
	BookingsCollection        = "bookings"
	SlotLocksCollection       = "booking_slot_locks"
	BookingSettingsCollection = "booking_settings"
	AdminsCollection          = "admins"
)

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Printf("Connected to MongoDB successfully! db=%s", DatabaseName())
}

// DatabaseName returns the configured database, defaulting to "agency".
func DatabaseName() string {
	if config.AppConfig.DatabaseName == "" {
		return "agency"
	}
	return config.AppConfig.DatabaseName
}

// DB returns the application database handle.
func DB() *mongo.Database {
	return MongoClient.Database(DatabaseName())
}

// Disconnect closes the client, if connected.
func Disconnect(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
