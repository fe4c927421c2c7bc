// Package validation holds the request guards that run before any service
// call. Guards are pure and synchronous: each inspects (and may normalize)
// a transport-neutral Request and returns an error to short-circuit the
// pipeline. The HTTP adapter lives in middleware; nothing here imports gin.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/badoux/checkmail"

	"fintrack/apperr"
)

// Request is the transport-neutral view a guard operates on. Body mutations
// (trimming, email normalization) are visible to the handler afterwards.
type Request struct {
	Body   map[string]interface{}
	Params map[string]string
	Query  url.Values
}

// Guard is a single validation step. A nil return lets the pipeline
// continue; an error aborts it and never reaches the service layer.
type Guard func(r *Request) error

// ----- coercion helpers -----

// Str returns the named body field as a string, or "" when absent or not a
// string.
func Str(body map[string]interface{}, key string) string {
	if s, ok := body[key].(string); ok {
		return s
	}
	return ""
}

// Amount coerces a JSON value to a float64. Strings are accepted because
// clients historically sent amounts both ways. ParseFloat admits "NaN" and
// "Inf", which are not amounts, so the result must also be finite.
func Amount(v interface{}) (float64, error) {
	var n float64
	var err error
	switch t := v.(type) {
	case float64:
		n = t
	case json.Number:
		n, err = t.Float64()
	case string:
		n, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	case int:
		n = float64(t)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("not a finite number: %v", v)
	}
	return n, nil
}

// PositiveInt coerces a JSON value to a positive integer id.
func PositiveInt(v interface{}) (uint, error) {
	switch n := v.(type) {
	case float64:
		if n <= 0 || n != float64(uint(n)) {
			return 0, fmt.Errorf("not a positive integer: %v", v)
		}
		return uint(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil || i <= 0 {
			return 0, fmt.Errorf("not a positive integer: %v", v)
		}
		return uint(i), nil
	case string:
		i, err := strconv.ParseUint(strings.TrimSpace(n), 10, 32)
		if err != nil || i == 0 {
			return 0, fmt.Errorf("not a positive integer: %v", v)
		}
		return uint(i), nil
	default:
		return 0, fmt.Errorf("not a positive integer: %v", v)
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses the calendar-date and timestamp layouts the API accepts.
func ParseDate(v interface{}) (time.Time, error) {
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	s, ok := v.(string)
	if !ok {
		return time.Time{}, fmt.Errorf("not a date: %v", v)
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

// IsDateOnly reports whether s carries no time-of-day component. Date-only
// upper bounds are widened to the end of that day to keep ranges inclusive.
func IsDateOnly(s string) bool {
	_, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	return err == nil
}

// ----- generic guards -----

// SanitizeBody trims whitespace from the named string fields in place.
func SanitizeBody(fields ...string) Guard {
	return func(r *Request) error {
		for _, f := range fields {
			if s, ok := r.Body[f].(string); ok {
				r.Body[f] = strings.TrimSpace(s)
			}
		}
		return nil
	}
}

// RequireFields fails on the first missing or empty field.
func RequireFields(fields ...string) Guard {
	return func(r *Request) error {
		for _, f := range fields {
			v, ok := r.Body[f]
			if !ok || v == nil || v == "" {
				return apperr.BadRequest("Missing field: " + f)
			}
		}
		return nil
	}
}

// RequireOneOf fails unless at least one of the named fields is present.
func RequireOneOf(fields ...string) Guard {
	return func(r *Request) error {
		for _, f := range fields {
			if _, ok := r.Body[f]; ok {
				return nil
			}
		}
		return apperr.BadRequest("At least one field is required for update")
	}
}

// NonEmptyIfPresent rejects a field that is present but empty.
func NonEmptyIfPresent(field string) Guard {
	return func(r *Request) error {
		if v, ok := r.Body[field]; ok {
			if s, isStr := v.(string); isStr && s == "" {
				return apperr.BadRequest(field + " cannot be empty")
			}
		}
		return nil
	}
}

// TextMaxLengths enforces per-field character caps. Oversized values are
// rejected, never truncated.
func TextMaxLengths(limits map[string]int) Guard {
	return func(r *Request) error {
		for f, max := range limits {
			if s, ok := r.Body[f].(string); ok && utf8.RuneCountInString(s) > max {
				return apperr.BadRequest(fmt.Sprintf("%s is too long (max %d characters)", f, max))
			}
		}
		return nil
	}
}

// Email validates the email field against a standard grammar and normalizes
// it to its lowercase canonical form.
func Email() Guard {
	return func(r *Request) error {
		raw := strings.TrimSpace(Str(r.Body, "email"))
		if err := checkmail.ValidateFormat(raw); err != nil {
			return apperr.BadRequest("Invalid email format")
		}
		r.Body["email"] = strings.ToLower(raw)
		return nil
	}
}

// StrongPassword requires ≥6 characters with at least one uppercase letter
// and one digit.
func StrongPassword(field string) Guard {
	return func(r *Request) error {
		pw := Str(r.Body, field)
		var hasUpper, hasDigit bool
		for _, c := range pw {
			if unicode.IsUpper(c) {
				hasUpper = true
			}
			if unicode.IsDigit(c) {
				hasDigit = true
			}
		}
		if utf8.RuneCountInString(pw) < 6 || !hasUpper || !hasDigit {
			return apperr.BadRequest("Password must be at least 6 characters and include at least one uppercase letter and one number")
		}
		return nil
	}
}

// IDParam requires the named route parameter to parse as a positive integer.
func IDParam(name string) Guard {
	return func(r *Request) error {
		id, err := strconv.ParseUint(r.Params[name], 10, 32)
		if err != nil || id == 0 {
			return apperr.BadRequest("Invalid ID in parameter: " + name)
		}
		return nil
	}
}

// ----- domain guards -----

// DateField requires the named body field, when present, to parse as a
// valid calendar date.
func DateField(field string) Guard {
	return func(r *Request) error {
		v, ok := r.Body[field]
		if !ok || v == nil || v == "" {
			return nil
		}
		if _, err := ParseDate(v); err != nil {
			return apperr.BadRequest("Invalid date format")
		}
		return nil
	}
}

// IncomeData collects every violated income field rule so the caller
// sees all of them at once instead of fixing one per round trip.
func IncomeData() Guard {
	return func(r *Request) error {
		var errs []string
		if v, ok := r.Body["amount"]; ok && v != nil {
			a, err := Amount(v)
			if err != nil || a <= 0 {
				errs = append(errs, "Amount must be greater than 0")
			}
		}
		if v, ok := r.Body["source"]; ok && v != nil {
			if s, isStr := v.(string); !isStr {
				errs = append(errs, "Source must be a string")
			} else if utf8.RuneCountInString(s) > 100 {
				errs = append(errs, "Source cannot exceed 100 characters")
			}
		}
		if v, ok := r.Body["description"]; ok && v != nil {
			if s, isStr := v.(string); !isStr {
				errs = append(errs, "Description must be a string")
			} else if utf8.RuneCountInString(s) > 500 {
				errs = append(errs, "Description cannot exceed 500 characters")
			}
		}
		if len(errs) > 0 {
			return apperr.BadRequest("Validation failed", errs...)
		}
		return nil
	}
}

// CategoryRef requires category_id, when present, to be a positive integer.
// Visibility is the income service's call; shape is checked here.
func CategoryRef() Guard {
	return func(r *Request) error {
		v, ok := r.Body["category_id"]
		if !ok || v == nil {
			return nil
		}
		if _, err := PositiveInt(v); err != nil {
			return apperr.BadRequest("Invalid category")
		}
		return nil
	}
}

// DateRange validates the start/end query parameters and their ordering.
func DateRange() Guard {
	return func(r *Request) error {
		var start, end time.Time
		var haveStart, haveEnd bool
		if s := r.Query.Get("start"); s != "" {
			t, err := ParseDate(s)
			if err != nil {
				return apperr.BadRequest("Invalid date format", "Invalid start date")
			}
			start, haveStart = t, true
		}
		if s := r.Query.Get("end"); s != "" {
			t, err := ParseDate(s)
			if err != nil {
				return apperr.BadRequest("Invalid date format", "Invalid end date")
			}
			end, haveEnd = t, true
		}
		if haveStart && haveEnd && start.After(end) {
			return apperr.BadRequest("Start date cannot be after end date")
		}
		return nil
	}
}

// IconURL validates the optional icon_url body field: bounded length and an
// absolute http(s) URL.
func IconURL() Guard {
	return func(r *Request) error {
		v, ok := r.Body["icon_url"]
		if !ok || v == nil || v == "" {
			return nil
		}
		s, isStr := v.(string)
		if !isStr || utf8.RuneCountInString(s) > 255 {
			return apperr.BadRequest("icon_url is too long (max 255 characters)")
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return apperr.BadRequest("Invalid URL format for icon_url")
		}
		return nil
	}
}
