package migration

import (
	"fmt"
	"log"

	"recipe-share/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Reaction{}); err != nil {
		log.Fatalf("Error migrating reaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
