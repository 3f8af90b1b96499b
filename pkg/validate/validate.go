// Package validate provides struct-tag validation for request input.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	email               valid email address
//	numeric             any number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gt=N                number > N
//	gte=N               number >= N
//	in=a,b,c            value must be one of the listed items
//
// Example:
//
//	type Input struct {
//	    Title string  `json:"title" validate:"required,min=2,max=200"`
//	    Email string  `json:"email" validate:"required,email"`
//	    Price float64 `json:"price" validate:"required,gt=0"`
//	    Role  string  `json:"role"  validate:"nullable,in=customer,admin"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonName(field)
		if msg := checkField(value, tag); msg != "" {
			errs[name] = msg
		}
	}

	return errs
}

// HasErrors reports whether the error map contains any entries.
func HasErrors(errs map[string]string) bool {
	return len(errs) > 0
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	if idx := strings.IndexByte(tag, ','); idx != -1 {
		tag = tag[:idx]
	}
	if tag == "" {
		return field.Name
	}
	return tag
}

func checkField(value reflect.Value, tag string) string {
	rules := splitRules(tag)

	for _, rule := range rules {
		key, arg := rule, ""
		if idx := strings.IndexByte(rule, '='); idx != -1 {
			key, arg = rule[:idx], rule[idx+1:]
		}

		switch key {
		case "nullable":
			if isZero(value) {
				return ""
			}
		case "required":
			if isZero(value) {
				return "is required"
			}
		case "email":
			if s, ok := asString(value); ok && !emailRe.MatchString(s) {
				return "must be a valid email address"
			}
		case "numeric":
			if _, ok := asNumber(value); !ok {
				return "must be a number"
			}
		case "min":
			if msg := checkBound(value, arg, "min"); msg != "" {
				return msg
			}
		case "max":
			if msg := checkBound(value, arg, "max"); msg != "" {
				return msg
			}
		case "gt":
			if n, ok := asNumber(value); ok {
				if limit, err := strconv.ParseFloat(arg, 64); err == nil && !(n > limit) {
					return fmt.Sprintf("must be greater than %s", arg)
				}
			}
		case "gte":
			if n, ok := asNumber(value); ok {
				if limit, err := strconv.ParseFloat(arg, 64); err == nil && n < limit {
					return fmt.Sprintf("must be at least %s", arg)
				}
			}
		case "in":
			if s, ok := asString(value); ok {
				if !contains(strings.Split(arg, ","), s) {
					return fmt.Sprintf("must be one of: %s", arg)
				}
			}
		}
	}

	return ""
}

// splitRules splits the tag on commas, but keeps "in=a,b,c" arguments
// together by treating everything after "in=" as one rule. Only a
// rule-initial "in=" counts; the substring inside "min=" does not.
func splitRules(tag string) []string {
	idx := strings.Index(tag, "in=")
	for idx != -1 && idx != 0 && tag[idx-1] != ',' {
		next := strings.Index(tag[idx+1:], "in=")
		if next == -1 {
			idx = -1
			break
		}
		idx += 1 + next
	}
	if idx != -1 {
		head := strings.TrimSuffix(tag[:idx], ",")
		rules := []string{}
		if head != "" {
			rules = strings.Split(head, ",")
		}
		return append(rules, tag[idx:])
	}
	return strings.Split(tag, ",")
}

func checkBound(value reflect.Value, arg, kind string) string {
	limit, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return ""
	}

	if s, ok := asString(value); ok {
		n := float64(len([]rune(s)))
		if kind == "min" && n < limit {
			return fmt.Sprintf("must be at least %s characters", arg)
		}
		if kind == "max" && n > limit {
			return fmt.Sprintf("must be at most %s characters", arg)
		}
		return ""
	}

	if n, ok := asNumber(value); ok {
		if kind == "min" && n < limit {
			return fmt.Sprintf("must be at least %s", arg)
		}
		if kind == "max" && n > limit {
			return fmt.Sprintf("must be at most %s", arg)
		}
	}
	return ""
}

func isZero(value reflect.Value) bool {
	return value.IsZero()
}

func asString(value reflect.Value) (string, bool) {
	if value.Kind() == reflect.String {
		return value.String(), true
	}
	return "", false
}

func asNumber(value reflect.Value) (float64, bool) {
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(value.Uint()), true
	case reflect.Float32, reflect.Float64:
		return value.Float(), true
	case reflect.String:
		n, err := strconv.ParseFloat(value.String(), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
