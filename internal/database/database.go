package database

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// OpenDB initializes the session-store connection pool. The gateway uses the
// database only for durable session state (carts, wishlists, currency cache);
// all catalog data stays in the core backend.
func OpenDB() (*sql.DB, error) {
	dsn := os.Getenv("DB_DSN_PRIMARY")
	if dsn == "" {
		// Local development fallback.
		dsn = "root:root@tcp(127.0.0.1:3306)/meravi_storefront?parseTime=true"
	}
	return OpenDBWithDSN(dsn)
}

// OpenDBWithDSN creates and configures a connection pool from any DSN.
func OpenDBWithDSN(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}
