package seeders

import (
	"errors"

	"formbuilder.link/configs/configslog"
	"formbuilder.link/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultFieldTypes katalogda bulunması gereken varsayılan alan tipleri.
func DefaultFieldTypes() []models.FieldType {
	return []models.FieldType{
		{Name: "Short Text", InputType: models.InputText, DefaultValidations: datatypes.JSONMap{"max_length": 255}, Icon: "ki-text"},
		{Name: "Long Text", InputType: models.InputTextarea, Icon: "ki-document"},
		{Name: "Email", InputType: models.InputEmail, DefaultValidations: datatypes.JSONMap{"pattern": "email"}, Icon: "ki-sms"},
		{Name: "Phone Number", InputType: models.InputTel, DefaultValidations: datatypes.JSONMap{"pattern": "phone"}, Icon: "ki-phone"},
		{Name: "Number", InputType: models.InputNumber, Icon: "ki-number"},
		{Name: "Date", InputType: models.InputDate, Icon: "ki-calendar"},
		{Name: "Dropdown", InputType: models.InputSelect, HasOptions: true, Icon: "ki-arrow-down"},
		{Name: "Radio Buttons", InputType: models.InputRadio, HasOptions: true, Icon: "ki-check-circle"},
		{Name: "Checkboxes", InputType: models.InputCheckbox, HasOptions: true, Icon: "ki-check-square"},
		{Name: "Yes/No", InputType: models.InputYesNo, Icon: "ki-toggle-on"},
		{Name: "File Upload", InputType: models.InputFile, DefaultValidations: datatypes.JSONMap{"max_size_mb": 10}, Icon: "ki-file-up"},
	}
}

// SeedFieldTypes eksik alan tiplerini isme göre ekler; mevcut kayıtlara dokunmaz.
func SeedFieldTypes(db *gorm.DB) error {
	var createdCount int64 = 0
	var errorOccurred bool = false

	configslog.SLog.Info("Alan tipleri seed işlemi başlıyor...")

	for _, typeToSeed := range DefaultFieldTypes() {
		var existingType models.FieldType
		result := db.Where("name = ?", typeToSeed.Name).First(&existingType)

		if result.Error == nil {
			configslog.SLog.Debugf("Alan tipi '%s' zaten mevcut, oluşturma atlanıyor.", typeToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Alan tipi kontrol edilirken veritabanı hatası",
				zap.String("field_type_name", typeToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if typeToSeed.DefaultValidations == nil {
			typeToSeed.DefaultValidations = datatypes.JSONMap{}
		}
		typeToSeed.IsActive = true

		if err := db.Create(&typeToSeed).Error; err != nil {
			configslog.Log.Error("Alan tipi oluşturulamadı",
				zap.String("field_type_name", typeToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}

		configslog.SLog.Infof("Alan tipi '%s' oluşturuldu (ID: %d).", typeToSeed.Name, typeToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni alan tipi seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm alan tipleri zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("alan tipleri seed edilirken en az bir hata oluştu")
	}
	return nil
}
