package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"preplabel-backend/entities"
)

func Migrate(db *gorm.DB) error {
	// uuid-ossp backs the uuid_generate_v4 column defaults, pg_trgm backs
	// the similarity() queries used for product dedup.
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"pg_trgm\";")

	models := []interface{}{
		&entities.Organization{},
		&entities.TeamMember{},
		&entities.LabelCategory{},
		&entities.LabelSubcategory{},
		&entities.Unit{},
		&entities.Allergen{},
		&entities.Product{},
		&entities.PrintedLabel{},
		&entities.LabelDraft{},
		&entities.Recipe{},
		&entities.RoutineTask{},
		&entities.TaskCompletion{},
		&entities.Notification{},
		&entities.SubscriptionPlan{},
		&entities.SubscriptionTransaction{},
		&entities.Printer{},
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	db.Exec("CREATE INDEX IF NOT EXISTS idx_products_name_trgm ON products USING gin (name gin_trgm_ops);")

	fmt.Println("Database migration complete")
	return nil
}
