package author

import (
	"context"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/shared"
)

const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"

	PhoneNumberLength = 10
)

const (
	msgNameRequired = "Name field is required."
	msgNameTaken    = "Name must be unique."
	msgPhoneNumber  = "Phone number must be exactly ten digits."
)

var phoneNumberPattern = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, PhoneNumberLength))

var errNameTaken = validation.NewError("validation_author_name_taken", msgNameTaken)

// NameChecker looks up whether an author name is already stored.
// excludeID is skipped so a record can keep its own name on update;
// pass uuid.Nil on create.
type NameChecker interface {
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}

func nameRules(names NameChecker, excludeID uuid.UUID) []validation.Rule {
	rules := []validation.Rule{
		validation.Required.Error(msgNameRequired),
		shared.NoNUL,
	}
	if names == nil {
		return rules
	}

	// Read-before-write early exit. The authors_name_key constraint is what
	// actually guarantees uniqueness.
	return append(rules, validation.WithContext(func(ctx context.Context, value interface{}) error {
		name, _ := value.(string)
		taken, err := names.ExistsByName(ctx, name, excludeID)
		if err != nil {
			return validation.NewInternalError(fmt.Errorf("check author name: %w", err))
		}
		if taken {
			return errNameTaken
		}
		return nil
	}))
}

func phoneNumberRules() []validation.Rule {
	return []validation.Rule{
		validation.Match(phoneNumberPattern).Error(msgPhoneNumber),
	}
}

// ValidateName checks that name is present and not used by another author
func ValidateName(ctx context.Context, names NameChecker, excludeID uuid.UUID, name string) error {
	err := validation.ValidateWithContext(ctx, name, nameRules(names, excludeID)...)
	return shared.FromValidation(FieldName, err)
}

// ValidatePhoneNumber accepts an empty number or exactly ten ASCII digits
func ValidatePhoneNumber(number string) error {
	err := validation.Validate(number, phoneNumberRules()...)
	return shared.FromValidation(FieldPhoneNumber, err)
}

// Validate runs every field rule and reports all violations at once.
// It must be called before the author is written to storage.
func (a *Author) Validate(ctx context.Context, names NameChecker) error {
	err := validation.ValidateStructWithContext(ctx, a,
		validation.Field(&a.Name, nameRules(names, a.ID)...),
		validation.Field(&a.PhoneNumber, phoneNumberRules()...),
	)
	return shared.FromValidation("", err)
}

// NewDuplicateNameError is the violation reported when storage rejects
// a name that is already taken.
func NewDuplicateNameError() *shared.ValidationError {
	return shared.NewValidationError(FieldName, msgNameTaken)
}
