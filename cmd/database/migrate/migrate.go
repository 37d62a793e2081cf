package migration

import (
	"MediTrack-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CaregiverLink{}); err != nil {
		log.Fatalf("Error migrating caregiver link database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Medication{}); err != nil {
		log.Fatalf("Error migrating medication database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealTimeConfig{}); err != nil {
		log.Fatalf("Error migrating meal time config database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ActivityEvent{}); err != nil {
		log.Fatalf("Error migrating activity event database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
