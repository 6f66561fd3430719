package author

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/shared"
)

// ============================================================================
// Fake NameChecker
// ============================================================================

type fakeNames struct {
	byName map[string]uuid.UUID
	err    error
	calls  int
}

func newFakeNames(names ...string) *fakeNames {
	f := &fakeNames{byName: make(map[string]uuid.UUID)}
	for _, n := range names {
		f.byName[n] = uuid.New()
	}
	return f
}

func (f *fakeNames) ExistsByName(_ context.Context, name string, excludeID uuid.UUID) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	id, ok := f.byName[name]
	return ok && id != excludeID, nil
}

func strPtr(s string) *string { return &s }

func requireViolations(t *testing.T, err error) *shared.ValidationError {
	t.Helper()
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

// ============================================================================
// Author.Validate
// ============================================================================

func TestAuthor_Validate_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone *string
	}{
		{name: "no phone", phone: nil},
		{name: "empty phone", phone: strPtr("")},
		{name: "ten digits", phone: strPtr("5551234567")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := &Author{Name: "Jane Doe", PhoneNumber: tt.phone}
			assert.NoError(t, a.Validate(context.Background(), newFakeNames("John Roe")))
		})
	}
}

func TestAuthor_Validate_MissingName(t *testing.T) {
	t.Parallel()

	a := &Author{Name: ""}
	verr := requireViolations(t, a.Validate(context.Background(), newFakeNames()))

	require.Len(t, verr.Violations, 1)
	assert.Equal(t, FieldName, verr.Violations[0].Field)
	assert.Equal(t, "Name field is required.", verr.Violations[0].Message)
}

func TestAuthor_Validate_DuplicateName(t *testing.T) {
	t.Parallel()

	a := &Author{Name: "Jane Doe"}
	verr := requireViolations(t, a.Validate(context.Background(), newFakeNames("Jane Doe")))

	assert.Equal(t, "Name must be unique.", verr.Message(FieldName))
}

func TestAuthor_Validate_NameWithNULByte(t *testing.T) {
	t.Parallel()

	names := newFakeNames()
	a := &Author{Name: "Jane\x00Doe"}
	verr := requireViolations(t, a.Validate(context.Background(), names))

	assert.Equal(t, "Value must not contain NUL characters.", verr.Message(FieldName))
	assert.Zero(t, names.calls)
}

func TestAuthor_Validate_NameComparisonIsCaseSensitive(t *testing.T) {
	t.Parallel()

	a := &Author{Name: "jane doe"}
	assert.NoError(t, a.Validate(context.Background(), newFakeNames("Jane Doe")))
}

func TestAuthor_Validate_OwnNameIsNotDuplicate(t *testing.T) {
	t.Parallel()

	names := newFakeNames("Jane Doe")
	a := &Author{ID: names.byName["Jane Doe"], Name: "Jane Doe"}

	assert.NoError(t, a.Validate(context.Background(), names))
}

func TestAuthor_Validate_InvalidPhoneNumbers(t *testing.T) {
	t.Parallel()

	for _, phone := range []string{"555123456", "55512345678", "555-123-4567", "555123456a", "５５５１２３４５６７"} {
		t.Run(phone, func(t *testing.T) {
			t.Parallel()

			a := &Author{Name: "Jane Doe", PhoneNumber: strPtr(phone)}
			verr := requireViolations(t, a.Validate(context.Background(), newFakeNames()))

			assert.Equal(t, "Phone number must be exactly ten digits.", verr.Message(FieldPhoneNumber))
		})
	}
}

func TestAuthor_Validate_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	a := &Author{Name: "", PhoneNumber: strPtr("123")}
	verr := requireViolations(t, a.Validate(context.Background(), newFakeNames()))

	assert.Equal(t, []shared.Violation{
		{Field: FieldName, Message: "Name field is required."},
		{Field: FieldPhoneNumber, Message: "Phone number must be exactly ten digits."},
	}, verr.Violations)
}

func TestAuthor_Validate_LookupFailureIsNotAViolation(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	names := &fakeNames{byName: map[string]uuid.UUID{}, err: cause}

	err := (&Author{Name: "Jane Doe"}).Validate(context.Background(), names)

	assert.ErrorIs(t, err, cause)
	assert.False(t, shared.IsValidationError(err))
}

func TestAuthor_Validate_NilCheckerSkipsUniqueness(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Author{Name: "Jane Doe"}).Validate(context.Background(), nil))
}

// ============================================================================
// Per-field validators
// ============================================================================

func TestValidateName(t *testing.T) {
	t.Parallel()

	names := newFakeNames("Jane Doe")

	assert.NoError(t, ValidateName(context.Background(), names, uuid.Nil, "John Roe"))

	verr := requireViolations(t, ValidateName(context.Background(), names, uuid.Nil, "Jane Doe"))
	assert.Equal(t, "Name must be unique.", verr.Message(FieldName))

	verr = requireViolations(t, ValidateName(context.Background(), names, uuid.Nil, ""))
	assert.Equal(t, "Name field is required.", verr.Message(FieldName))
}

func TestValidateName_EmptySkipsLookup(t *testing.T) {
	t.Parallel()

	names := newFakeNames()
	_ = ValidateName(context.Background(), names, uuid.Nil, "")

	assert.Zero(t, names.calls)
}

func TestValidatePhoneNumber(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePhoneNumber(""))
	assert.NoError(t, ValidatePhoneNumber("0123456789"))

	verr := requireViolations(t, ValidatePhoneNumber("012345678"))
	assert.Equal(t, "Phone number must be exactly ten digits.", verr.Message(FieldPhoneNumber))
}

func TestNewDuplicateNameError(t *testing.T) {
	t.Parallel()

	err := NewDuplicateNameError()

	assert.Equal(t, "Name must be unique.", err.Message(FieldName))
	assert.Equal(t, "VALIDATION_FAILED", ToErrorCode(err))
	assert.Equal(t, 422, ToHTTPStatus(err))
}
