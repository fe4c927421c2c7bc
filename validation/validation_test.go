package validation

import (
	"math"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/apperr"
)

func newRequest(body map[string]interface{}) *Request {
	if body == nil {
		body = map[string]interface{}{}
	}
	return &Request{Body: body, Params: map[string]string{}, Query: url.Values{}}
}

func runGuards(r *Request, guards []Guard) error {
	for _, g := range guards {
		if err := g(r); err != nil {
			return err
		}
	}
	return nil
}

func TestAmount(t *testing.T) {
	a, err := Amount(float64(42.5))
	require.NoError(t, err)
	assert.Equal(t, 42.5, a)

	a, err = Amount("19.99")
	require.NoError(t, err)
	assert.Equal(t, 19.99, a)

	_, err = Amount("abc")
	assert.Error(t, err)
	_, err = Amount(nil)
	assert.Error(t, err)
	_, err = Amount(true)
	assert.Error(t, err)

	// ParseFloat accepts these spellings; an amount must still be finite
	for _, s := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "Infinity"} {
		_, err = Amount(s)
		assert.Error(t, err, "Amount(%q)", s)
	}
	_, err = Amount(math.NaN())
	assert.Error(t, err)
	_, err = Amount(math.Inf(1))
	assert.Error(t, err)
}

func TestPositiveInt(t *testing.T) {
	id, err := PositiveInt(float64(7))
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	id, err = PositiveInt("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	_, err = PositiveInt(float64(0))
	assert.Error(t, err)
	_, err = PositiveInt(float64(-3))
	assert.Error(t, err)
	_, err = PositiveInt(float64(1.5))
	assert.Error(t, err)
	_, err = PositiveInt("abc")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())

	_, err = ParseDate("2024-03-15T10:30:00Z")
	assert.NoError(t, err)
	_, err = ParseDate("2024-03-15 10:30:00")
	assert.NoError(t, err)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
	_, err = ParseDate("not a date")
	assert.Error(t, err)
	_, err = ParseDate(42)
	assert.Error(t, err)
}

func TestIsDateOnly(t *testing.T) {
	assert.True(t, IsDateOnly("2024-03-15"))
	assert.False(t, IsDateOnly("2024-03-15T10:30:00Z"))
	assert.False(t, IsDateOnly("nope"))
}

func TestSanitizeBody(t *testing.T) {
	r := newRequest(map[string]interface{}{"source": "  Employer  ", "amount": 5.0})
	require.NoError(t, SanitizeBody("source", "missing")(r))
	assert.Equal(t, "Employer", r.Body["source"])
	assert.Equal(t, 5.0, r.Body["amount"])
}

func TestRequireFields(t *testing.T) {
	r := newRequest(map[string]interface{}{"amount": 5.0})
	assert.NoError(t, RequireFields("amount")(r))

	err := RequireFields("amount", "date")(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing field: date")

	// empty string counts as missing
	r2 := newRequest(map[string]interface{}{"email": ""})
	assert.Error(t, RequireFields("email")(r2))
}

func TestRequireOneOf(t *testing.T) {
	r := newRequest(map[string]interface{}{"firstname": "Ann"})
	assert.NoError(t, RequireOneOf("firstname", "lastname")(r))

	err := RequireOneOf("firstname", "lastname")(newRequest(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "At least one field is required for update")
}

func TestEmail(t *testing.T) {
	r := newRequest(map[string]interface{}{"email": "  User@Example.COM "})
	require.NoError(t, Email()(r))
	assert.Equal(t, "user@example.com", r.Body["email"])

	r2 := newRequest(map[string]interface{}{"email": "not-an-email"})
	err := Email()(r2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid email format")
}

func TestStrongPassword(t *testing.T) {
	ok := func(pw string) error {
		return StrongPassword("password")(newRequest(map[string]interface{}{"password": pw}))
	}
	assert.NoError(t, ok("Secret1"))
	assert.Error(t, ok("short"))
	assert.Error(t, ok("alllowercase1"))
	assert.Error(t, ok("NoDigitsHere"))
	assert.Error(t, ok("Ab1"))
}

func TestIDParam(t *testing.T) {
	r := newRequest(nil)
	r.Params["id"] = "12"
	assert.NoError(t, IDParam("id")(r))

	r.Params["id"] = "abc"
	err := IDParam("id")(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid ID in parameter: id")

	r.Params["id"] = "0"
	assert.Error(t, IDParam("id")(r))
	r.Params["id"] = "-4"
	assert.Error(t, IDParam("id")(r))
}

func TestIncomeDataCollectsAllViolations(t *testing.T) {
	r := newRequest(map[string]interface{}{
		"amount":      float64(-5),
		"source":      strings.Repeat("x", 101),
		"description": strings.Repeat("y", 501),
	})
	err := IncomeData()(r)
	require.Error(t, err)

	ae, ok := err.(*apperr.Error)
	require.True(t, ok)
	assert.Equal(t, "Validation failed", ae.Message)
	assert.Equal(t, []string{
		"Amount must be greater than 0",
		"Source cannot exceed 100 characters",
		"Description cannot exceed 500 characters",
	}, ae.Details)
}

func TestIncomeDataRejectsNonFiniteAmount(t *testing.T) {
	for _, v := range []interface{}{"NaN", "Inf", "+Inf", math.NaN(), math.Inf(-1)} {
		r := newRequest(map[string]interface{}{"amount": v})
		err := IncomeData()(r)
		require.Error(t, err, "amount=%v", v)
		ae, ok := err.(*apperr.Error)
		require.True(t, ok)
		assert.Contains(t, ae.Details, "Amount must be greater than 0")
	}
}

func TestIncomeDataRejectsNonStringText(t *testing.T) {
	r := newRequest(map[string]interface{}{"source": float64(123)})
	err := IncomeData()(r)
	require.Error(t, err)
	assert.Contains(t, err.(*apperr.Error).Details, "Source must be a string")

	r2 := newRequest(map[string]interface{}{"description": true})
	err2 := IncomeData()(r2)
	require.Error(t, err2)
	assert.Contains(t, err2.(*apperr.Error).Details, "Description must be a string")
}

func TestIncomeDataBoundaries(t *testing.T) {
	// exactly at the caps is fine
	r := newRequest(map[string]interface{}{
		"amount":      float64(0.01),
		"source":      strings.Repeat("x", 100),
		"description": strings.Repeat("y", 500),
	})
	assert.NoError(t, IncomeData()(r))

	// multi-byte runes count as single characters
	r2 := newRequest(map[string]interface{}{"source": strings.Repeat("é", 100)})
	assert.NoError(t, IncomeData()(r2))
	r3 := newRequest(map[string]interface{}{"source": strings.Repeat("é", 101)})
	assert.Error(t, IncomeData()(r3))
}

func TestCategoryRef(t *testing.T) {
	assert.NoError(t, CategoryRef()(newRequest(nil)))
	assert.NoError(t, CategoryRef()(newRequest(map[string]interface{}{"category_id": float64(3)})))

	err := CategoryRef()(newRequest(map[string]interface{}{"category_id": "abc"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid category")

	assert.Error(t, CategoryRef()(newRequest(map[string]interface{}{"category_id": float64(0)})))
}

func TestDateField(t *testing.T) {
	assert.NoError(t, DateField("date")(newRequest(nil)))
	assert.NoError(t, DateField("date")(newRequest(map[string]interface{}{"date": "2024-01-01"})))

	err := DateField("date")(newRequest(map[string]interface{}{"date": "nope"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid date format")
}

func TestDateRange(t *testing.T) {
	r := newRequest(nil)
	r.Query.Set("start", "2024-01-01")
	r.Query.Set("end", "2024-12-31")
	assert.NoError(t, DateRange()(r))

	r2 := newRequest(nil)
	r2.Query.Set("start", "2024-12-31")
	r2.Query.Set("end", "2024-01-01")
	err := DateRange()(r2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Start date cannot be after end date")

	r3 := newRequest(nil)
	r3.Query.Set("start", "bogus")
	assert.Error(t, DateRange()(r3))
}

func TestIconURL(t *testing.T) {
	assert.NoError(t, IconURL()(newRequest(nil)))
	assert.NoError(t, IconURL()(newRequest(map[string]interface{}{"icon_url": "https://cdn.example.com/i.png"})))
	assert.Error(t, IconURL()(newRequest(map[string]interface{}{"icon_url": "ftp://example.com/i.png"})))
	assert.Error(t, IconURL()(newRequest(map[string]interface{}{"icon_url": "not a url"})))
	assert.Error(t, IconURL()(newRequest(map[string]interface{}{"icon_url": "https://e.com/" + strings.Repeat("a", 255)})))
}

func TestSignupPipeline(t *testing.T) {
	r := newRequest(map[string]interface{}{
		"email":    " New@Example.com ",
		"password": "Secret1",
		"username": " newbie ",
	})
	require.NoError(t, runGuards(r, Signup()))
	assert.Equal(t, "new@example.com", r.Body["email"])
	assert.Equal(t, "newbie", r.Body["username"])

	weak := newRequest(map[string]interface{}{"email": "a@b.com", "password": "weak"})
	assert.Error(t, runGuards(weak, Signup()))
}

func TestIncomeCreatePipeline(t *testing.T) {
	ok := newRequest(map[string]interface{}{"amount": float64(100)})
	assert.NoError(t, runGuards(ok, IncomeCreate()))

	missing := newRequest(map[string]interface{}{"source": "Job"})
	err := runGuards(missing, IncomeCreate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing field: amount")
}

func TestIncomeUpdatePipelineAllowsPartial(t *testing.T) {
	r := newRequest(map[string]interface{}{"source": "Side gig"})
	r.Params["id"] = "3"
	assert.NoError(t, runGuards(r, IncomeUpdate()))

	bad := newRequest(map[string]interface{}{"amount": float64(-1)})
	bad.Params["id"] = "3"
	assert.Error(t, runGuards(bad, IncomeUpdate()))
}

func TestPasswordChangePipeline(t *testing.T) {
	ok := newRequest(map[string]interface{}{"currentPassword": "Old1pass", "newPassword": "New2pass"})
	assert.NoError(t, runGuards(ok, PasswordChange()))

	weak := newRequest(map[string]interface{}{"currentPassword": "Old1pass", "newPassword": "weak"})
	assert.Error(t, runGuards(weak, PasswordChange()))
}
