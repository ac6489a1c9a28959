package services

import (
	"context"
	"testing"

	"formbuilder.link/dto"
	"formbuilder.link/models"
	"formbuilder.link/pkg/testdb"
	"formbuilder.link/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db          *gorm.DB
	ctx         context.Context
	fieldTypes  IFieldTypeService
	forms       IFormService
	editor      ISchemaEditorService
	submissions ISubmissionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.OpenSeeded(t)
	return &fixture{
		db:          db,
		ctx:         context.Background(),
		fieldTypes:  NewFieldTypeService(db),
		forms:       NewFormService(db),
		editor:      NewSchemaEditorService(db),
		submissions: NewSubmissionService(db),
	}
}

func (f *fixture) fieldType(t *testing.T, name string) *models.FieldType {
	t.Helper()
	ft, err := repositories.NewFieldTypeRepository(f.db).FindByName(f.ctx, name)
	require.NoError(t, err)
	return ft
}

func (f *fixture) createForm(t *testing.T, name string) *models.Form {
	t.Helper()
	form, err := f.forms.CreateForm(f.ctx, nil, dto.FormCreateDTO{Name: name})
	require.NoError(t, err)
	return form
}

func (f *fixture) setStatus(t *testing.T, formID uint, status models.FormStatus) {
	t.Helper()
	_, err := f.forms.UpdateFormSettings(f.ctx, formID, dto.FormSettingsUpdateDTO{Status: &status})
	require.NoError(t, err)
}

func (f *fixture) addField(t *testing.T, formID uint, typeName, label string) *models.FormField {
	t.Helper()
	field, err := f.editor.AddField(f.ctx, formID, dto.FieldCreateDTO{
		FieldTypeID: f.fieldType(t, typeName).ID,
		Label:       label,
	})
	require.NoError(t, err)
	return field
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }
