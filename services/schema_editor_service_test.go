package services

import (
	"encoding/json"
	"testing"

	"formbuilder.link/dto"
	"formbuilder.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFieldOrdersStrictlyIncrease(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Ordering")

	prev := 0
	for _, label := range []string{"one", "two", "three", "four"} {
		field := f.addField(t, form.ID, "Short Text", label)
		assert.Equal(t, prev+1, field.Order)
		prev = field.Order
	}

	// Sıra, o anki en büyük değerin bir fazlasıdır
	fields, err := f.editor.ReorderFields(f.ctx, form.ID, []dto.FieldOrderItemDTO{{ID: fieldIDAt(t, f, form.ID, 0), Order: 40}})
	require.NoError(t, err)
	require.Len(t, fields, 4)
	next := f.addField(t, form.ID, "Short Text", "five")
	assert.Equal(t, 41, next.Order)

	// Başka bir formun sırası bağımsızdır
	other := f.createForm(t, "Other")
	assert.Equal(t, 1, f.addField(t, other.ID, "Short Text", "x").Order)
}

func fieldIDAt(t *testing.T, f *fixture, formID uint, idx int) uint {
	t.Helper()
	form, err := f.forms.GetFormByID(f.ctx, formID)
	require.NoError(t, err)
	require.Greater(t, len(form.Fields), idx)
	return form.Fields[idx].ID
}

func TestAddSectionOrders(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Sections")

	s1, err := f.editor.AddSection(f.ctx, form.ID, dto.SectionCreateDTO{Title: "Personal", Description: "About you"})
	require.NoError(t, err)
	s2, err := f.editor.AddSection(f.ctx, form.ID, dto.SectionCreateDTO{Title: "Work"})
	require.NoError(t, err)

	assert.Equal(t, 1, s1.Order)
	assert.Equal(t, 2, s2.Order)
	assert.Equal(t, "About you", s1.Description)

	_, err = f.editor.AddSection(f.ctx, form.ID, dto.SectionCreateDTO{Title: " "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.editor.AddSection(f.ctx, 9999, dto.SectionCreateDTO{Title: "Orphan"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSectionKeepsTitleClearsDescription(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Sections")
	section, err := f.editor.AddSection(f.ctx, form.ID, dto.SectionCreateDTO{Title: "Intro", Description: "Hello"})
	require.NoError(t, err)

	updated, err := f.editor.UpdateSection(f.ctx, section.ID, dto.SectionUpdateDTO{})
	require.NoError(t, err)
	assert.Equal(t, "Intro", updated.Title)
	assert.Equal(t, "", updated.Description)

	updated, err = f.editor.UpdateSection(f.ctx, section.ID, dto.SectionUpdateDTO{Title: strPtr("Welcome"), Description: "Again"})
	require.NoError(t, err)
	assert.Equal(t, "Welcome", updated.Title)
	assert.Equal(t, "Again", updated.Description)

	got, err := f.editor.GetSection(f.ctx, section.ID)
	require.NoError(t, err)
	assert.Equal(t, "Welcome", got.Title)
	assert.Equal(t, section.Order, got.Order)

	_, err = f.editor.UpdateSection(f.ctx, 9999, dto.SectionUpdateDTO{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSectionNullsFieldSection(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Sections")
	section, err := f.editor.AddSection(f.ctx, form.ID, dto.SectionCreateDTO{Title: "Temp"})
	require.NoError(t, err)

	field, err := f.editor.AddField(f.ctx, form.ID, dto.FieldCreateDTO{
		FieldTypeID: f.fieldType(t, "Short Text").ID, Label: "Inside", SectionID: uintPtr(section.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, field.SectionID)

	require.NoError(t, f.editor.DeleteSection(f.ctx, section.ID))

	got, err := f.editor.GetField(f.ctx, field.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SectionID)
	assert.Equal(t, "Inside", got.Label)

	_, err = f.editor.GetSection(f.ctx, section.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.editor.DeleteSection(f.ctx, section.ID), ErrNotFound)
}

func TestAddFieldCopiesDefaultsAndParsesOptions(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Options")

	field, err := f.editor.AddField(f.ctx, form.ID, dto.FieldCreateDTO{
		FieldTypeID:      f.fieldType(t, "Dropdown").ID,
		Label:            "Color",
		Options:          "Red\n\n  Green  \r\nBlue\n",
		IsRequired:       true,
		ConditionalLogic: map[string]interface{}{"show_if": map[string]interface{}{"field": "1", "equals": "yes"}},
	})
	require.NoError(t, err)
	assert.True(t, field.FieldType.HasOptions)
	assert.Equal(t, []models.Choice{
		{Value: "Red", Label: "Red"},
		{Value: "Green", Label: "Green"},
		{Value: "Blue", Label: "Blue"},
	}, field.Choices())

	text, err := f.editor.AddField(f.ctx, form.ID, dto.FieldCreateDTO{FieldTypeID: f.fieldType(t, "Short Text").ID, Label: "Name"})
	require.NoError(t, err)

	got, err := f.editor.GetField(f.ctx, text.ID)
	require.NoError(t, err)
	assert.Equal(t, json.Number("255"), got.Validations["max_length"])
	assert.Empty(t, got.Choices())

	reloaded, err := f.editor.GetField(f.ctx, field.ID)
	require.NoError(t, err)
	assert.Len(t, reloaded.Choices(), 3)
	assert.Contains(t, reloaded.ConditionalLogic, "show_if")
}

func TestAddFieldRejectsBadReferences(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Refs")
	other := f.createForm(t, "Elsewhere")
	foreign, err := f.editor.AddSection(f.ctx, other.ID, dto.SectionCreateDTO{Title: "Foreign"})
	require.NoError(t, err)
	textType := f.fieldType(t, "Short Text").ID

	_, err = f.editor.AddField(f.ctx, form.ID, dto.FieldCreateDTO{FieldTypeID: 9999, Label: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrFieldTypeNotFound)

	_, err = f.editor.AddField(f.ctx, form.ID, dto.FieldCreateDTO{FieldTypeID: textType, Label: "X", SectionID: uintPtr(9999)})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrSectionNotFound)

	_, err = f.editor.AddField(f.ctx, form.ID, dto.FieldCreateDTO{FieldTypeID: textType, Label: "X", SectionID: uintPtr(foreign.ID)})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrSectionFormMismatch)

	_, err = f.editor.AddField(f.ctx, form.ID, dto.FieldCreateDTO{FieldTypeID: textType, Label: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.editor.AddField(f.ctx, 9999, dto.FieldCreateDTO{FieldTypeID: textType, Label: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Zero(t, f.count(t, &models.FormField{}))
}

func TestAddFieldAllowsInactiveFieldType(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Inactive")
	ft := f.fieldType(t, "Date")
	require.NoError(t, f.db.Model(ft).Update("is_active", false).Error)

	field := f.addField(t, form.ID, "Date", "When")
	assert.Equal(t, ft.ID, field.FieldTypeID)
}

func TestUpdateFieldSemantics(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Update")
	section, err := f.editor.AddSection(f.ctx, form.ID, dto.SectionCreateDTO{Title: "S1"})
	require.NoError(t, err)
	field, err := f.editor.AddField(f.ctx, form.ID, dto.FieldCreateDTO{
		FieldTypeID:      f.fieldType(t, "Radio Buttons").ID,
		Label:            "Pick",
		HelpText:         "help",
		Placeholder:      "ph",
		IsRequired:       true,
		SectionID:        uintPtr(section.ID),
		Options:          "a\nb",
		ConditionalLogic: map[string]interface{}{"k": "v"},
	})
	require.NoError(t, err)

	// Boş güncelleme: etiket, bölüm ve seçenekler korunur, diğerleri sıfırlanır
	updated, err := f.editor.UpdateField(f.ctx, field.ID, dto.FieldUpdateDTO{})
	require.NoError(t, err)
	assert.Equal(t, "Pick", updated.Label)
	assert.Equal(t, "", updated.HelpText)
	assert.Equal(t, "", updated.Placeholder)
	assert.False(t, updated.IsRequired)
	assert.Empty(t, updated.ConditionalLogic)
	require.NotNil(t, updated.SectionID)
	assert.Equal(t, section.ID, *updated.SectionID)
	assert.Len(t, updated.Choices(), 2)
	assert.Equal(t, field.Order, updated.Order)

	// Boşluktan oluşan seçenek metni mevcut seçenekleri değiştirmez
	updated, err = f.editor.UpdateField(f.ctx, field.ID, dto.FieldUpdateDTO{Options: "   \n "})
	require.NoError(t, err)
	assert.Len(t, updated.Choices(), 2)

	updated, err = f.editor.UpdateField(f.ctx, field.ID, dto.FieldUpdateDTO{
		Label: strPtr("Choose"), Options: "x\ny\nz", SectionID: dto.SetOptionalID(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Choose", updated.Label)
	assert.Nil(t, updated.SectionID)
	assert.Len(t, updated.Choices(), 3)

	s2, err := f.editor.AddSection(f.ctx, form.ID, dto.SectionCreateDTO{Title: "S2"})
	require.NoError(t, err)
	updated, err = f.editor.UpdateField(f.ctx, field.ID, dto.FieldUpdateDTO{SectionID: dto.SetOptionalID(s2.ID)})
	require.NoError(t, err)
	require.NotNil(t, updated.SectionID)
	assert.Equal(t, s2.ID, *updated.SectionID)

	reloaded, err := f.editor.GetField(f.ctx, field.ID)
	require.NoError(t, err)
	assert.Equal(t, "Choose", reloaded.Label)
	require.NotNil(t, reloaded.SectionID)
	assert.Equal(t, s2.ID, *reloaded.SectionID)
}

func TestUpdateFieldRejectsForeignOrMissingSection(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Mine")
	other := f.createForm(t, "Theirs")
	foreign, err := f.editor.AddSection(f.ctx, other.ID, dto.SectionCreateDTO{Title: "Foreign"})
	require.NoError(t, err)
	field := f.addField(t, form.ID, "Short Text", "Name")

	_, err = f.editor.UpdateField(f.ctx, field.ID, dto.FieldUpdateDTO{SectionID: dto.SetOptionalID(foreign.ID)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.editor.UpdateField(f.ctx, field.ID, dto.FieldUpdateDTO{SectionID: dto.SetOptionalID(9999)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.editor.UpdateField(f.ctx, field.ID, dto.FieldUpdateDTO{Label: strPtr("  ")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.editor.UpdateField(f.ctx, 9999, dto.FieldUpdateDTO{})
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := f.editor.GetField(f.ctx, field.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SectionID)
	assert.Equal(t, "Name", got.Label)
}

func TestReorderFieldsIgnoresForeignIDs(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Reorder")
	a := f.addField(t, form.ID, "Short Text", "A")
	b := f.addField(t, form.ID, "Short Text", "B")

	other := f.createForm(t, "Other")
	foreign := f.addField(t, other.ID, "Short Text", "Foreign")

	fields, err := f.editor.ReorderFields(f.ctx, form.ID, []dto.FieldOrderItemDTO{
		{ID: a.ID, Order: 2},
		{ID: b.ID, Order: 1},
		{ID: foreign.ID, Order: 99},
		{ID: 424242, Order: 5},
	})
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, b.ID, fields[0].ID)
	assert.Equal(t, a.ID, fields[1].ID)

	got, err := f.editor.GetField(f.ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, foreign.Order, got.Order)

	_, err = f.editor.ReorderFields(f.ctx, 9999, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteFieldRemovesRecordedValues(t *testing.T) {
	f := newFixture(t)
	form := f.createForm(t, "Values")
	keep := f.addField(t, form.ID, "Short Text", "Keep")
	drop := f.addField(t, form.ID, "Short Text", "Drop")
	f.setStatus(t, form.ID, models.FormStatusPublished)

	_, err := f.submissions.RecordSubmission(f.ctx, form.Slug, SubmittedValues{keep.ID: {"k"}, drop.ID: {"d"}}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.count(t, &models.FormFieldValue{}))

	require.NoError(t, f.editor.DeleteField(f.ctx, drop.ID))

	assert.Equal(t, int64(1), f.count(t, &models.FormFieldValue{}))
	assert.Equal(t, int64(1), f.count(t, &models.FormSubmission{}))
	_, err = f.editor.GetField(f.ctx, drop.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.editor.DeleteField(f.ctx, drop.ID), ErrNotFound)
}
