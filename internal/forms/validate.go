package forms

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-+().]{7,20}$`)
	zipRe   = regexp.MustCompile(`^\d{5}$`)
)

// ValidateField checks a single value against a field's declarative rules and
// returns a user-facing message, or "" when the value passes. Checks
// short-circuit in a fixed order; malformed rule configuration (bad regex and
// the like) counts as passing so an authoring bug never blocks submission.
// Visibility is the caller's concern: hidden fields must be skipped before
// calling.
func ValidateField(field FieldConfig, value any) string {
	if field.Type == FieldTypeSectionHeader || field.Type == FieldTypeHTMLBlock {
		return ""
	}

	if isEmptyValue(value) {
		if field.Required {
			return field.Label + " is required"
		}
		return ""
	}

	if msg := validateFormat(field, value); msg != "" {
		return msg
	}

	v := field.Validation
	if v == nil {
		return ""
	}

	if msg := validateLength(field, v, value); msg != "" {
		return msg
	}
	if msg := validateNumeric(field, v, value); msg != "" {
		return msg
	}
	return validateContent(field, v, value)
}

func validateFormat(field FieldConfig, value any) string {
	s := stringValue(value)
	switch field.Type {
	case FieldTypeEmail:
		if !emailRe.MatchString(strings.TrimSpace(s)) {
			return "Please enter a valid email address"
		}
	case FieldTypeURL:
		u, err := url.Parse(strings.TrimSpace(s))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return "Please enter a valid URL"
		}
	case FieldTypePhone:
		if !phoneRe.MatchString(strings.TrimSpace(s)) {
			return "Please enter a valid phone number"
		}
	case FieldTypeZipCode:
		if !zipRe.MatchString(strings.TrimSpace(s)) {
			return "Please enter a valid 5-digit ZIP code"
		}
	}
	return ""
}

func validateLength(field FieldConfig, v *ValidationConfig, value any) string {
	s := stringValue(value)
	runes := len([]rune(s))
	if v.MinLength != nil && runes < *v.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", field.Label, *v.MinLength)
	}
	if v.MaxLength != nil && runes > *v.MaxLength {
		return fmt.Sprintf("%s must be at most %d characters", field.Label, *v.MaxLength)
	}

	words := len(strings.Fields(strings.TrimSpace(s)))
	if v.MinWords != nil && words < *v.MinWords {
		return fmt.Sprintf("%s must be at least %d words", field.Label, *v.MinWords)
	}
	if v.MaxWords != nil && words > *v.MaxWords {
		return fmt.Sprintf("%s must be at most %d words", field.Label, *v.MaxWords)
	}
	return ""
}

func validateNumeric(field FieldConfig, v *ValidationConfig, value any) string {
	needsNumber := v.NumericOnly || v.IntegerOnly || v.MinValue != nil || v.MaxValue != nil
	if !needsNumber {
		return ""
	}

	n := coerceNumber(value)
	if math.IsNaN(n) {
		return field.Label + " must be a number"
	}
	if v.IntegerOnly && n != math.Trunc(n) {
		return field.Label + " must be a whole number"
	}
	if v.MinValue != nil && n < *v.MinValue {
		return fmt.Sprintf("%s must be at least %v", field.Label, *v.MinValue)
	}
	if v.MaxValue != nil && n > *v.MaxValue {
		return fmt.Sprintf("%s must be at most %v", field.Label, *v.MaxValue)
	}
	return ""
}

func validateContent(field FieldConfig, v *ValidationConfig, value any) string {
	s := stringValue(value)

	if v.Pattern != "" {
		// An invalid pattern passes rather than trapping the submitter.
		if re, err := regexp.Compile(v.Pattern); err == nil && !re.MatchString(s) {
			if v.PatternMessage != "" {
				return v.PatternMessage
			}
			return field.Label + " format is invalid"
		}
	}
	if v.Contains != "" && !strings.Contains(s, v.Contains) {
		return fmt.Sprintf("%s must contain %q", field.Label, v.Contains)
	}
	if v.StartsWith != "" && !strings.HasPrefix(s, v.StartsWith) {
		return fmt.Sprintf("%s must start with %q", field.Label, v.StartsWith)
	}
	if v.EndsWith != "" && !strings.HasSuffix(s, v.EndsWith) {
		return fmt.Sprintf("%s must end with %q", field.Label, v.EndsWith)
	}
	return ""
}

// stringValue renders a value the way length and content checks see it.
// Arrays join on comma, numbers print without a trailing .0 where possible.
func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []any:
		parts := make([]string, len(s))
		for i, item := range s {
			parts[i] = stringValue(item)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(s, ",")
	case float64:
		if s == math.Trunc(s) && math.Abs(s) < 1e15 {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%v", s)
	default:
		return fmt.Sprint(v)
	}
}

// ValidatePage validates the visible fields whose PageNumber equals page.
func ValidatePage(fields []FieldConfig, values FormValues, page int) Errors {
	errs := Errors{}
	for _, f := range fields {
		if f.PageNumber != page || !ShouldShow(f, values) {
			continue
		}
		if msg := ValidateField(f, values[f.ID]); msg != "" {
			errs[f.ID] = msg
		}
	}
	return errs
}

// ValidateAll validates every visible field regardless of page. The second
// return is the lowest page number containing an error, so callers can
// navigate back to it; -1 when everything passes.
func ValidateAll(fields []FieldConfig, values FormValues) (Errors, int) {
	errs := Errors{}
	firstPage := -1
	for _, f := range fields {
		if !ShouldShow(f, values) {
			continue
		}
		if msg := ValidateField(f, values[f.ID]); msg != "" {
			errs[f.ID] = msg
			if firstPage == -1 || f.PageNumber < firstPage {
				firstPage = f.PageNumber
			}
		}
	}
	return errs, firstPage
}
