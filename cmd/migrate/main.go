package main

import (
	"log"

	"hillcrest-academy/app/config"
	"hillcrest-academy/app/database"
)

func main() {
	log.Println("Starting schema migration...")

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Schema migration completed successfully!")
}
