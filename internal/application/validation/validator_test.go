package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/realestate/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_NoViolations(t *testing.T) {
	r := New()
	r.Field("name").NotBlank("Villa", "required").Length("Villa", 3, 100, "length")
	assert.NoError(t, r.Err())
	assert.Empty(t, r.Violations())
}

func TestRules_ReportsEveryViolation(t *testing.T) {
	r := New()
	r.Field("name").
		NotBlank("", "Name is required").
		MinLength("", 3, "Name must be at least 3 characters")
	r.Field("code").Matches("bad code!", "internalcode", "Code is invalid")

	err := r.Err()
	require.Error(t, err)

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Name is required",
		"Name must be at least 3 characters",
		"Code is invalid",
	}, verr.Messages())
	assert.True(t, verr.HasField("name"))
	assert.True(t, verr.HasField("code"))
}

func TestFieldRules_Strings(t *testing.T) {
	t.Run("blank is not accepted as present", func(t *testing.T) {
		r := New()
		r.Field("f").NotBlank("   ", "m")
		assert.Error(t, r.Err())
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		r := New()
		r.Field("f").MaxLength("ñññ", 3, "m")
		assert.NoError(t, r.Err())
	})

	t.Run("max length", func(t *testing.T) {
		r := New()
		r.Field("f").MaxLength("abcd", 3, "m")
		assert.Error(t, r.Err())
	})
}

func TestFieldRules_Patterns(t *testing.T) {
	tests := []struct {
		tag   string
		value string
		valid bool
	}{
		{"internalcode", "ABC-123_x", true},
		{"internalcode", "ABC 123", false},
		{"internalcode", "", false},
		{"photoname", "me.jpg", true},
		{"photoname", "me.jpeg", true},
		{"photoname", "me.png", true},
		{"photoname", "me.gif", false},
		{"photoname", ".png", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			r := New()
			r.Field("f").Matches(tt.value, tt.tag, "m")
			assert.Equal(t, tt.valid, r.Err() == nil)
		})
	}
}

func TestFieldRules_IDs(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		requiredOK   bool
		wellFormedOK bool
	}{
		{"empty", "", false, true},
		{"nil uuid", uuid.Nil.String(), false, true},
		{"valid", uuid.NewString(), true, true},
		{"upper case", "6F9619FF-8B86-D011-B42D-00C04FC964FF", true, true},
		{"malformed", "not-a-guid", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.Field("id").RequiredID(tt.value, "required")
			assert.Equal(t, tt.requiredOK, r.Err() == nil, "required")

			r = New()
			r.Field("id").UUID(tt.value, "format")
			assert.Equal(t, tt.wellFormedOK, r.Err() == nil, "format")
		})
	}
}

func TestFieldRules_NumbersDatesAndSizes(t *testing.T) {
	minPrice := decimal.RequireFromString("0.01")
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	r := New()
	r.Field("price").GreaterThan(decimal.RequireFromString("0.01"), minPrice, "price")
	r.Field("tax").GreaterOrEqual(decimal.Zero, decimal.Zero, "tax")
	r.Field("date").NotAfter(now, now, "date")
	r.Field("date").NotZeroTime(now, "zero")
	r.Field("photo").MaxBytes(make([]byte, 10), 10, "size")

	var verr *shared.ValidationError
	require.ErrorAs(t, r.Err(), &verr)
	assert.Equal(t, []string{"price"}, verr.Messages())
}

func TestFieldRules_MaxScale(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"12", true},
		{"12.3", true},
		{"12.30", true},
		{"12.345", false},
		{"12.3400", true},
		{"-0.001", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			r := New()
			r.Field("amount").MaxScale(decimal.RequireFromString(tt.value), 2, "scale")
			assert.Equal(t, tt.ok, r.Err() == nil)
		})
	}
}
