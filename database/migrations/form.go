package migrations

import (
	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateFormsTables forms, form_sections ve form_fields tablolarını oluşturur.
// field_types tablosu önceden migrate edilmiş olmalıdır.
func MigrateFormsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating forms, form_sections & form_fields tables...")
	err := db.AutoMigrate(&models.Form{}, &models.FormSection{}, &models.FormField{})
	if err != nil {
		configslog.Log.Error("Failed to migrate forms, form_sections & form_fields tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Forms, form_sections & form_fields tables migrated successfully")
	return nil
}
