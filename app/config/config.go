package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB   *sql.DB
	Port string
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var psqlInfo string
	if os.Getenv("LOCAL_DB") == "true" {
		psqlInfo = "host=localhost port=5432 user=postgres dbname=elc sslmode=disable"
		log.Println("Using local PostgreSQL database")
	} else {
		host := getenv("DB_HOST", "localhost")
		port := getenv("DB_PORT", "5432")
		user := getenv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getenv("DB_NAME", "elc")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=60",
			host, port, user, password, dbname)
		log.Printf("Connecting to database %s at %s:%s", dbname, host, port)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)

		if os.Getenv("LOCAL_DB") != "true" {
			log.Println("\n=== DATABASE CONNECTION FAILED ===")
			log.Println("The configured database server is unreachable.")
			log.Println("\nTo use a local PostgreSQL database instead:")
			log.Println("1. Install PostgreSQL locally")
			log.Println("2. Create database: createdb elc")
			log.Println("3. Set environment variable: export LOCAL_DB=true")
			log.Println("4. Run the application again")
		}

		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:   db,
		Port: getenv("PORT", "3000"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
