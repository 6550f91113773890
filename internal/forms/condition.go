package forms

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

// ShouldShow reports whether a field is currently visible given the form's
// values. Pure and deterministic: identical input always yields the same
// answer. Fields without a conditional rule are always visible.
func ShouldShow(field FieldConfig, values FormValues) bool {
	rule := field.Conditional
	if rule == nil {
		return true
	}

	if rule.Expression != "" {
		met, err := evalExpression(rule.Expression, values)
		if err != nil {
			// Authoring bug in the expression must not hide the field.
			log.Printf("condition: expression %q failed, showing field %s: %v", rule.Expression, field.ID, err)
			return true
		}
		if !rule.showWhenMet() {
			return !met
		}
		return met
	}

	met := evalOperator(rule, values)
	if !rule.showWhenMet() {
		return !met
	}
	return met
}

func evalExpression(src string, values FormValues) (bool, error) {
	env := map[string]any(values)
	if env == nil {
		env = map[string]any{}
	}
	program, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return false, err
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression result is %T, not bool", out)
	}
	return b, nil
}

func evalOperator(rule *ConditionalRule, values FormValues) bool {
	current, exists := values[rule.FieldID]
	if !exists {
		current = nil
	}

	switch rule.Operator {
	case OpEquals:
		return valueEquals(current, rule.Value)
	case OpNotEquals:
		return !valueEquals(current, rule.Value)
	case OpContains:
		return valueContains(current, rule.Value)
	case OpNotContains:
		return !valueContains(current, rule.Value)
	case OpGreaterThan:
		return numericCompare(current, rule.Value, func(a, b float64) bool { return a > b })
	case OpLessThan:
		return numericCompare(current, rule.Value, func(a, b float64) bool { return a < b })
	case OpGreaterOrEqual:
		return numericCompare(current, rule.Value, func(a, b float64) bool { return a >= b })
	case OpLessOrEqual:
		return numericCompare(current, rule.Value, func(a, b float64) bool { return a <= b })
	case OpIsEmpty:
		return isEmptyValue(current)
	case OpIsNotEmpty:
		return !isEmptyValue(current)
	default:
		return false
	}
}

// valueEquals is strict equality over decoded JSON values, with the single
// concession that all numeric types compare as float64.
func valueEquals(a, b any) bool {
	if na, aok := asNumber(a); aok {
		if nb, bok := asNumber(b); bok {
			return na == nb
		}
		return false
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	default:
		return reflect.DeepEqual(a, b)
	}
}

// valueContains is a substring test for strings and a membership test for
// arrays; every other value type yields false.
func valueContains(current, needle any) bool {
	switch cv := current.(type) {
	case string:
		return strings.Contains(cv, fmt.Sprint(needle))
	case []any:
		for _, item := range cv {
			if valueEquals(item, needle) {
				return true
			}
		}
		return false
	case []string:
		for _, item := range cv {
			if item == fmt.Sprint(needle) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func numericCompare(a, b any, cmp func(a, b float64) bool) bool {
	na := coerceNumber(a)
	nb := coerceNumber(b)
	if math.IsNaN(na) || math.IsNaN(nb) {
		return false
	}
	return cmp(na, nb)
}

// asNumber recognizes values that are already numeric without string
// coercion.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// coerceNumber mimics JS Number() over form values: empty string coerces to
// 0, booleans to 0/1, unparseable strings to NaN. A nil value is a missing
// field (undefined, not null), so it coerces to NaN.
func coerceNumber(v any) float64 {
	if n, ok := asNumber(v); ok {
		return n
	}
	switch s := v.(type) {
	case nil:
		return math.NaN()
	case bool:
		if s {
			return 1
		}
		return 0
	case string:
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return 0
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// isEmptyValue treats nil, whitespace-only strings and empty arrays as empty.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}
