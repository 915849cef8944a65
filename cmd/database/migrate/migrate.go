package migration

import (
	"FoodShare-Backend/entities"
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
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Claim{}); err != nil {
		log.Fatalf("Error migrating claim database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Group{}); err != nil {
		log.Fatalf("Error migrating group database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroupMember{}); err != nil {
		log.Fatalf("Error migrating group member database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
