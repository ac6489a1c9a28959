package migrations

import (
	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateSubmissionsTables form_submissions ve form_field_values tablolarını oluşturur.
func MigrateSubmissionsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating form_submissions & form_field_values tables...")
	err := db.AutoMigrate(&models.FormSubmission{}, &models.FormFieldValue{})
	if err != nil {
		configslog.Log.Error("Failed to migrate form_submissions & form_field_values tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Form_submissions & form_field_values tables migrated successfully")
	return nil
}
