package persistence

import (
	"gorm.io/gorm"
)

// AutoMigrateAll creates schemas for every managed table. Production uses
// externally managed DDL; this exists for in-memory test databases.
func AutoMigrateAll(db *gorm.DB) error {
	models := make([]any, 0, len(AllTables()))
	for _, t := range AllTables() {
		models = append(models, tableSpecs[t].model())
	}
	return db.AutoMigrate(models...)
}
