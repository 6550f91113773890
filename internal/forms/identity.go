package forms

import "strings"

// Role tags a field the progressive flow treats as an identity field.
type Role string

const (
	RoleNone  Role = ""
	RolePhone Role = "phone"
	RoleName  Role = "name"
	RoleEmail Role = "email"
	RoleZip   Role = "zip"
)

// Classifier detects identity fields by declared type first, then by
// substring patterns against a normalized id/label. It is a documented
// best-effort heuristic: a custom field named "full_name_of_witness" will be
// misclassified as a name field. Schema authors can override the pattern
// lists rather than fight the default.
type Classifier struct {
	PhonePatterns  []string
	NamePatterns   []string
	EmailPatterns  []string
	ZipPatterns    []string
	NameExclusions []string
}

// DefaultClassifier returns the stock pattern lists.
func DefaultClassifier() *Classifier {
	return &Classifier{
		PhonePatterns: []string{"phone", "mobile", "cellnumber"},
		NamePatterns:  []string{"fullname", "yourname", "firstname", "lastname", "name"},
		EmailPatterns: []string{"email"},
		ZipPatterns:   []string{"zipcode", "zip", "postalcode", "postcode"},
		NameExclusions: []string{
			"companyname", "businessname", "organizationname", "orgname",
			"eventname", "petname", "filename", "username", "nickname",
		},
	}
}

// Classify returns the identity role of a field, or RoleNone.
func (c *Classifier) Classify(field FieldConfig) Role {
	switch field.Type {
	case FieldTypePhone:
		return RolePhone
	case FieldTypeEmail:
		return RoleEmail
	case FieldTypeZipCode:
		return RoleZip
	case FieldTypeFullName:
		return RoleName
	}

	key := normalizeKey(field.ID) + "|" + normalizeKey(field.Label)

	for _, p := range c.PhonePatterns {
		if strings.Contains(key, p) {
			return RolePhone
		}
	}
	for _, p := range c.EmailPatterns {
		if strings.Contains(key, p) {
			return RoleEmail
		}
	}
	for _, p := range c.ZipPatterns {
		if strings.Contains(key, p) {
			return RoleZip
		}
	}
	for _, ex := range c.NameExclusions {
		if strings.Contains(key, ex) {
			return RoleNone
		}
	}
	for _, p := range c.NamePatterns {
		if strings.Contains(key, p) {
			return RoleName
		}
	}
	return RoleNone
}

// Split partitions a schema into identity fields and the remaining custom
// fields, preserving order.
func (c *Classifier) Split(fields []FieldConfig) (identity, custom []FieldConfig) {
	for _, f := range fields {
		if c.Classify(f) != RoleNone {
			identity = append(identity, f)
		} else {
			custom = append(custom, f)
		}
	}
	return identity, custom
}

// Remap merges identity values back onto the schema's own field ids so the
// stored submission uses the form author's ids, not the logical role names.
// Custom values come first; an identity value wins for any field whose role
// matches.
func (c *Classifier) Remap(fields []FieldConfig, identity map[Role]any, custom FormValues) FormValues {
	merged := FormValues{}
	for k, v := range custom {
		merged[k] = v
	}
	for _, f := range fields {
		role := c.Classify(f)
		if role == RoleNone {
			continue
		}
		if v, ok := identity[role]; ok {
			merged[f.ID] = v
		}
	}
	return merged
}

// normalizeKey lowercases and strips separators so "Zip Code", "zip_code"
// and "zip-code" all match the same pattern.
func normalizeKey(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '_', '-', '.', '/':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
