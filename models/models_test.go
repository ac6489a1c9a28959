package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestFormStatusTransitions(t *testing.T) {
	allowed := map[[2]FormStatus]bool{
		{FormStatusDraft, FormStatusDraft}:         true,
		{FormStatusDraft, FormStatusPublished}:     true,
		{FormStatusDraft, FormStatusArchived}:      true,
		{FormStatusPublished, FormStatusPublished}: true,
		{FormStatusPublished, FormStatusArchived}:  true,
		{FormStatusArchived, FormStatusArchived}:   true,
	}
	all := []FormStatus{FormStatusDraft, FormStatusPublished, FormStatusArchived}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]FormStatus{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
		assert.False(t, from.CanTransitionTo("deleted"))
	}
}

func TestParseOptionsText(t *testing.T) {
	options := ParseOptionsText("  Red \n\n\tGreen\r\n \nBlue")
	assert.Equal(t, []Choice{
		{Value: "Red", Label: "Red"},
		{Value: "Green", Label: "Green"},
		{Value: "Blue", Label: "Blue"},
	}, options.Choices)

	assert.Empty(t, ParseOptionsText(" \n ").Choices)
}

func TestResolveValue(t *testing.T) {
	checkbox := FormField{FieldType: FieldType{InputType: InputCheckbox}}
	text := FormField{FieldType: FieldType{InputType: InputText}}

	assert.Equal(t, "", checkbox.ResolveValue(nil))
	assert.Equal(t, "a,b", checkbox.ResolveValue([]string{"a", "b"}))
	assert.Equal(t, "second", text.ResolveValue([]string{"first", "second"}))
	assert.Equal(t, " as is ", text.ResolveValue([]string{" as is "}))
}

func TestUnsectionedFieldsKeepsOrder(t *testing.T) {
	sectionID := uint(3)
	form := Form{Fields: []FormField{
		{Label: "a"},
		{Label: "b", SectionID: &sectionID},
		{Label: "c"},
	}}
	fields := form.UnsectionedFields()
	if assert.Len(t, fields, 2) {
		assert.Equal(t, "a", fields[0].Label)
		assert.Equal(t, "c", fields[1].Label)
	}
	assert.True(t, (&Form{Status: FormStatusPublished}).IsSubmittable())
	assert.False(t, (&Form{Status: FormStatusDraft}).IsSubmittable())
}

func TestChoicesFromOptions(t *testing.T) {
	field := FormField{Options: datatypes.NewJSONType(FieldOptions{Choices: []Choice{{Value: "x", Label: "X"}}})}
	assert.Equal(t, "X", field.Choices()[0].Label)
	assert.True(t, InputCheckbox.IsMultiValued())
	assert.False(t, InputSelect.IsMultiValued())
	assert.False(t, InputKind("color").IsValid())
}
