package forms

import "encoding/json"

// FieldType identifies which control a field renders as. The set mirrors the
// question types the form builder can produce.
type FieldType string

const (
	FieldTypeText          FieldType = "text"
	FieldTypeTextarea      FieldType = "textarea"
	FieldTypeEmail         FieldType = "email"
	FieldTypePhone         FieldType = "phone"
	FieldTypeURL           FieldType = "url"
	FieldTypeNumber        FieldType = "number"
	FieldTypeCurrency      FieldType = "currency"
	FieldTypeDate          FieldType = "date"
	FieldTypeTime          FieldType = "time"
	FieldTypeDateTime      FieldType = "datetime"
	FieldTypeDropdown      FieldType = "dropdown"
	FieldTypeMultiSelect   FieldType = "multi_select"
	FieldTypeRadio         FieldType = "radio"
	FieldTypeCheckbox      FieldType = "checkbox"
	FieldTypeCheckboxGroup FieldType = "checkbox_group"
	FieldTypeYesNo         FieldType = "yes_no"
	FieldTypeRating        FieldType = "rating"
	FieldTypeScale         FieldType = "scale"
	FieldTypeSlider        FieldType = "slider"
	FieldTypeRange         FieldType = "range"
	FieldTypeFileUpload    FieldType = "file_upload"
	FieldTypeImageUpload   FieldType = "image_upload"
	FieldTypeSignature     FieldType = "signature"
	FieldTypeAddress       FieldType = "address"
	FieldTypeFullName      FieldType = "full_name"
	FieldTypeZipCode       FieldType = "zip_code"
	FieldTypeMatrix        FieldType = "matrix"
	FieldTypeRanking       FieldType = "ranking"
	FieldTypeSectionHeader FieldType = "section_header"
	FieldTypeHidden        FieldType = "hidden"
	FieldTypeHTMLBlock     FieldType = "html_block"
)

// Conditional operators.
const (
	OpEquals         = "equals"
	OpNotEquals      = "not_equals"
	OpContains       = "contains"
	OpNotContains    = "not_contains"
	OpGreaterThan    = "greater_than"
	OpLessThan       = "less_than"
	OpGreaterOrEqual = "greater_or_equal"
	OpLessOrEqual    = "less_or_equal"
	OpIsEmpty        = "is_empty"
	OpIsNotEmpty     = "is_not_empty"
)

// Option is one selectable choice for dropdown/radio/checkbox style fields.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ConditionalRule decides whether a field is visible based on another field's
// current value. A rule whose FieldID points at a field that does not exist
// simply never matches. Expression, when set, is an expr-lang program
// evaluated against the full value map and wins over the operator form.
type ConditionalRule struct {
	FieldID     string `json:"field"`
	Operator    string `json:"operator"`
	Value       any    `json:"value,omitempty"`
	ShowWhenMet *bool  `json:"show_when_met,omitempty"`
	Expression  string `json:"expression,omitempty"`
}

// showWhenMet defaults to true when absent from the schema JSON.
func (r *ConditionalRule) showWhenMet() bool {
	return r.ShowWhenMet == nil || *r.ShowWhenMet
}

// ValidationConfig carries the declarative per-field constraints. All checks
// are optional; a nil pointer or zero value means "not configured".
type ValidationConfig struct {
	MinLength        *int     `json:"min_length,omitempty"`
	MaxLength        *int     `json:"max_length,omitempty"`
	MinWords         *int     `json:"min_words,omitempty"`
	MaxWords         *int     `json:"max_words,omitempty"`
	MinValue         *float64 `json:"min_value,omitempty"`
	MaxValue         *float64 `json:"max_value,omitempty"`
	IntegerOnly      bool     `json:"integer_only,omitempty"`
	NumericOnly      bool     `json:"numeric_only,omitempty"`
	Pattern          string   `json:"pattern,omitempty"`
	PatternMessage   string   `json:"pattern_message,omitempty"`
	Contains         string   `json:"contains,omitempty"`
	StartsWith       string   `json:"starts_with,omitempty"`
	EndsWith         string   `json:"ends_with,omitempty"`
	MaxFileSizeMB    float64  `json:"max_file_size_mb,omitempty"`
	AllowedFileTypes []string `json:"allowed_file_types,omitempty"`
}

// FieldConfig is the canonical description of a single form field after
// normalization. ID is unique within a schema; PageNumber defaults to 0.
type FieldConfig struct {
	ID          string            `json:"id"`
	Type        FieldType         `json:"type"`
	Label       string            `json:"label"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Required    bool              `json:"required"`
	Options     []Option          `json:"options,omitempty"`
	Validation  *ValidationConfig `json:"validation,omitempty"`
	Conditional *ConditionalRule  `json:"conditional,omitempty"`
	PageNumber  int               `json:"page_number"`
}

// QuestionConfig is the legacy schema shape. Older forms store an array of
// questions instead of fields; the normalizer maps them through a fixed
// question_type table.
type QuestionConfig struct {
	QuestionID   string   `json:"question_id"`
	QuestionType string   `json:"question_type"`
	QuestionText string   `json:"question_text"`
	Required     bool     `json:"required"`
	Options      []string `json:"options,omitempty"`
	Page         int      `json:"page"`
}

// SchemaDocument is the raw stored form schema. Exactly one of Fields or
// Questions is expected to be populated; Fields wins when both are present.
type SchemaDocument struct {
	Fields              []FieldConfig    `json:"fields,omitempty"`
	Questions           []QuestionConfig `json:"questions,omitempty"`
	Styling             json.RawMessage  `json:"styling,omitempty"`
	Confirmation        *Confirmation    `json:"confirmation,omitempty"`
	SupportingDocuments json.RawMessage  `json:"supporting_documents,omitempty"`
}

// Confirmation is the post-submit message configuration.
type Confirmation struct {
	Message     string `json:"message,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

// FormValues maps field id to the value the user entered. Values are plain
// decoded JSON: string, float64, bool, []any or map[string]any.
type FormValues map[string]any

// Errors maps field id to a single user-facing error message. It is
// recomputed wholesale on every validation pass.
type Errors map[string]string

// ParseSchema decodes a stored schema JSON blob.
func ParseSchema(raw []byte) (*SchemaDocument, error) {
	var doc SchemaDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
