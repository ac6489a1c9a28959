package migrations

import (
	"errors"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"

	"gorm.io/gorm"
)

func MigrateFieldTypesTable(db *gorm.DB) error {
	configslog.SLog.Info("FieldType tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.FieldType{}); err != nil {
		errMsg := "FieldType tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("FieldType tablosu migrate işlemi tamamlandı.")
	return nil
}
