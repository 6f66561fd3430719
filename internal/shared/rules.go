package shared

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const msgNoNUL = "Value must not contain NUL characters."

// NoNUL rejects strings holding a NUL byte. PostgreSQL text columns cannot
// store one, so such values must fail validation rather than the insert.
// Empty values pass.
var NoNUL = validation.NewStringRuleWithError(
	func(s string) bool { return !strings.ContainsRune(s, 0) },
	validation.NewError("validation_no_nul", msgNoNUL),
)
