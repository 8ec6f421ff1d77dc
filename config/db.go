package config

import (
	"bazaarkart_be/helper/atdb"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var MongoString = os.Getenv("MONGOSTRING")
var PostgresString = os.Getenv("POSTGRESSTRING")
var MONGOSTRINGGEO = os.Getenv("MONGOSTRINGGEO")

var (
	Mongoconn, ErrorMongoconn = atdb.MongoConnect(atdb.DBInfo{
		DBString: MongoString,
		DBName:   "bazaarkart",
	})

	// mongo terpisah untuk cache geocoding
	MongoconnGeo, ErrorMongoconnGeo = atdb.MongoConnect(atdb.DBInfo{
		DBString: MONGOSTRINGGEO,
		DBName:   "bazaargeo",
	})

	PostgresDB *gorm.DB
)

func init() {
	if ErrorMongoconn != nil {
		log.Printf("[ERROR] Failed to connect to MongoDB: %v", ErrorMongoconn)
	} else {
		fmt.Println("Successfully connected to MongoDB!")
	}

	if ErrorMongoconnGeo != nil {
		log.Printf("[ERROR] Failed to connect to geo MongoDB: %v", ErrorMongoconnGeo)
	} else {
		fmt.Println("Successfully connected to geo MongoDB!")
	}

	if PostgresString == "" {
		log.Println("[WARNING] POSTGRESSTRING not set, PostgreSQL disabled")
		return
	}

	var err error
	PostgresDB, err = gorm.Open(postgres.Open(PostgresString), &gorm.Config{})
	if err != nil {
		log.Printf("[ERROR] Failed to connect to PostgreSQL with GORM: %v", err)
	} else {
		fmt.Println("Successfully connected to PostgreSQL with GORM!")
	}
}
