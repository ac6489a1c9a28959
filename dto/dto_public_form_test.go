package dto

import (
	"testing"

	"formbuilder.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNewPublicFormDTOGroupsFieldsBySection(t *testing.T) {
	sectionID := uint(5)
	selectType := models.FieldType{InputType: models.InputSelect, HasOptions: true}
	textType := models.FieldType{InputType: models.InputText}

	inSection := models.FormField{
		Label:     "Color",
		SectionID: &sectionID,
		Order:     1,
		FieldType: selectType,
		Options:   datatypes.NewJSONType(models.ParseOptionsText("Red\nBlue")),
	}
	inSection.ID = 11
	loose := models.FormField{Label: "Comment", Order: 2, FieldType: textType}
	loose.ID = 12

	section := models.FormSection{Title: "Prefs", Order: 1, Fields: []models.FormField{inSection}}
	section.ID = sectionID

	form := &models.Form{
		Name:     "Survey",
		Slug:     "survey",
		Sections: []models.FormSection{section},
		Fields:   []models.FormField{inSection, loose},
	}

	view := NewPublicFormDTO(form)
	require.Len(t, view.Sections, 1)
	require.Len(t, view.Sections[0].Fields, 1)
	assert.Equal(t, "field_11", view.Sections[0].Fields[0].Name)
	assert.True(t, view.Sections[0].Fields[0].HasOptions)
	assert.Len(t, view.Sections[0].Fields[0].Choices, 2)

	require.Len(t, view.Fields, 1)
	assert.Equal(t, "field_12", view.Fields[0].Name)
	assert.NotNil(t, view.Fields[0].Choices)
	assert.Empty(t, view.Fields[0].Choices)
}
