package forms

import (
	"fmt"
	"log"
)

// NormalizeOptions tweaks normalization per render surface. Progressive flow
// pages keep section headers as render-only separators; everything else drops
// them.
type NormalizeOptions struct {
	KeepSectionHeaders bool
}

// questionTypeMap translates legacy question_type strings to canonical field
// types. Unknown types fall back to plain text rather than failing the form.
var questionTypeMap = map[string]FieldType{
	"short_text":      FieldTypeText,
	"long_text":       FieldTypeTextarea,
	"paragraph":       FieldTypeTextarea,
	"email":           FieldTypeEmail,
	"phone":           FieldTypePhone,
	"website":         FieldTypeURL,
	"number":          FieldTypeNumber,
	"currency":        FieldTypeCurrency,
	"date":            FieldTypeDate,
	"time":            FieldTypeTime,
	"datetime":        FieldTypeDateTime,
	"multiple_choice": FieldTypeRadio,
	"checkboxes":      FieldTypeCheckboxGroup,
	"dropdown":        FieldTypeDropdown,
	"multi_select":    FieldTypeMultiSelect,
	"yes_no":          FieldTypeYesNo,
	"rating":          FieldTypeRating,
	"scale":           FieldTypeScale,
	"file":            FieldTypeFileUpload,
	"image":           FieldTypeImageUpload,
	"signature":       FieldTypeSignature,
	"address":         FieldTypeAddress,
	"name":            FieldTypeFullName,
	"zip":             FieldTypeZipCode,
	"section_header":  FieldTypeSectionHeader,
	"hidden":          FieldTypeHidden,
}

// NormalizeSchema produces the canonical ordered field list from either
// schema shape. A non-empty fields array is authoritative and used verbatim;
// only when it is absent does the legacy questions array get mapped through
// questionTypeMap.
func NormalizeSchema(doc *SchemaDocument, opts NormalizeOptions) []FieldConfig {
	if doc == nil {
		return nil
	}
	if len(doc.Fields) > 0 {
		return doc.Fields
	}

	fields := make([]FieldConfig, 0, len(doc.Questions))
	for i, q := range doc.Questions {
		ft, ok := questionTypeMap[q.QuestionType]
		if !ok {
			log.Printf("normalize: unknown question type %q, defaulting to text", q.QuestionType)
			ft = FieldTypeText
		}
		switch ft {
		case FieldTypeHidden:
			continue
		case FieldTypeSectionHeader:
			if !opts.KeepSectionHeaders {
				continue
			}
			// Render-only pseudo-field: never required, never validated.
			fields = append(fields, FieldConfig{
				ID:         questionID(q, i),
				Type:       FieldTypeSectionHeader,
				Label:      q.QuestionText,
				PageNumber: q.Page,
			})
			continue
		}

		f := FieldConfig{
			ID:         questionID(q, i),
			Type:       ft,
			Label:      q.QuestionText,
			Required:   q.Required,
			PageNumber: q.Page,
		}
		for _, opt := range q.Options {
			f.Options = append(f.Options, Option{Label: opt, Value: opt})
		}
		fields = append(fields, f)
	}
	return fields
}

func questionID(q QuestionConfig, idx int) string {
	if q.QuestionID != "" {
		return q.QuestionID
	}
	return fmt.Sprintf("question_%d", idx)
}
