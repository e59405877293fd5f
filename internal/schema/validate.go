// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// FieldError describes why a single field was rejected. Field is empty for
// problems with the record as a whole.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) String() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// ValidationError is returned when a raw record does not conform to the Row
// schema. It lists every failing field.
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.String()
	}
	noun := "errors"
	if len(e.Errors) == 1 {
		noun = "error"
	}
	return fmt.Sprintf("%d validation %s for Row: %s", len(e.Errors), noun, strings.Join(parts, "; "))
}

// Fields returns the names of the rejected fields in the order they were
// checked.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func recordError(format string, args ...any) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Reason: fmt.Sprintf(format, args...)}}}
}

// fieldRule controls how one attribute of a raw record is checked.
type fieldRule struct {
	name string
	// strict disables type conversion: the raw value must already have the
	// target type.
	strict bool
	// def is used when the attribute is absent. A nil def makes the field
	// required.
	def *cty.Value
}

var defaultCompleted = cty.False

var rules = []fieldRule{
	{name: FieldUserID},
	{name: FieldID},
	{name: FieldTitle, strict: true},
	{name: FieldCompleted, def: &defaultCompleted},
}

// Validate checks a decoded record and returns the corresponding Row. On
// failure the error is a *ValidationError.
func Validate(record map[string]any) (Row, error) {
	if record == nil {
		return Row{}, recordError("record must be an object, got null")
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return Row{}, recordError("record cannot be encoded: %s", err)
	}
	return ValidateJSON(raw)
}

// ValidateJSON checks a single JSON-encoded record and returns the
// corresponding Row. On failure the error is a *ValidationError.
func ValidateJSON(raw []byte) (Row, error) {
	ty, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return Row{}, recordError("invalid JSON: %s", err)
	}
	if !ty.IsObjectType() {
		return Row{}, recordError("record must be an object, got %s", ty.FriendlyName())
	}
	val, err := ctyjson.Unmarshal(raw, ty)
	if err != nil {
		return Row{}, recordError("invalid JSON: %s", err)
	}
	return validateValue(val)
}

func validateValue(val cty.Value) (Row, error) {
	attrs := make(map[string]cty.Value, len(rules))
	var errs []FieldError

	for _, rule := range rules {
		if !val.Type().HasAttribute(rule.name) {
			if rule.def == nil {
				errs = append(errs, FieldError{Field: rule.name, Reason: "field required"})
				continue
			}
			attrs[rule.name] = *rule.def
			continue
		}

		v, reason := coerce(val.GetAttr(rule.name), rowType.AttributeType(rule.name), rule.strict)
		if reason != "" {
			errs = append(errs, FieldError{Field: rule.name, Reason: reason})
			continue
		}
		attrs[rule.name] = v
	}

	if len(errs) > 0 {
		return Row{}, &ValidationError{Errors: errs}
	}

	var row Row
	if err := gocty.FromCtyValue(cty.ObjectVal(attrs), &row); err != nil {
		return Row{}, recordError("cannot bind record: %s", err)
	}
	return row, nil
}

// coerce converts v to the wanted primitive type. A non-empty reason means
// the value was rejected.
func coerce(v cty.Value, want cty.Type, strict bool) (cty.Value, string) {
	if v.IsNull() {
		return cty.NilVal, "must not be null"
	}
	if strict && !v.Type().Equals(want) {
		return cty.NilVal, fmt.Sprintf("must be a %s, got %s", want.FriendlyName(), v.Type().FriendlyName())
	}

	out, err := convert.Convert(v, want)
	if err != nil {
		return cty.NilVal, fmt.Sprintf("cannot convert %s to %s", v.Type().FriendlyName(), want.FriendlyName())
	}

	if want.Equals(cty.Number) {
		var n int64
		if err := gocty.FromCtyValue(out, &n); err != nil {
			return cty.NilVal, err.Error()
		}
	}
	return out, ""
}
