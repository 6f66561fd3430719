package post

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared"
)

const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldCategory = "category"

	// Lengths count characters, not bytes
	MinContentLength = 250
	MaxSummaryLength = 250

	CategoryFiction    = "Fiction"
	CategoryNonFiction = "Non-Fiction"
)

const (
	msgContentLength = "Post content must be at least 250 characters long."
	msgSummaryLength = "Post summary must be a maximum of 250 characters."
	msgCategory      = "Category must be either 'Fiction' or 'Non-Fiction'."
	msgTitle         = "Title must be sufficiently clickbait-y"
)

// ClickbaitPhrases lists the phrases a title must contain at least one of.
// Matching is a case-sensitive substring test.
var ClickbaitPhrases = []string{"Won't Believe", "Secret", "Top", "Guess"}

var errTitle = validation.NewError("validation_post_title_clickbait", msgTitle)

func contentRules() []validation.Rule {
	// RuneLength skips empty values, so Required covers length zero
	return []validation.Rule{
		validation.Required.Error(msgContentLength),
		shared.NoNUL,
		validation.RuneLength(MinContentLength, 0).Error(msgContentLength),
	}
}

func summaryRules() []validation.Rule {
	return []validation.Rule{
		shared.NoNUL,
		validation.RuneLength(0, MaxSummaryLength).Error(msgSummaryLength),
	}
}

func categoryRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(msgCategory),
		validation.In(CategoryFiction, CategoryNonFiction).Error(msgCategory),
	}
}

func titleRules() []validation.Rule {
	return []validation.Rule{
		shared.NoNUL,
		validation.By(func(value interface{}) error {
			title, _ := value.(string)
			if !HasClickbait(title) {
				return errTitle
			}
			return nil
		}),
	}
}

// HasClickbait reports whether title contains one of ClickbaitPhrases
func HasClickbait(title string) bool {
	for _, phrase := range ClickbaitPhrases {
		if strings.Contains(title, phrase) {
			return true
		}
	}
	return false
}

func ValidateContent(content string) error {
	return shared.FromValidation(FieldContent, validation.Validate(content, contentRules()...))
}

func ValidateSummary(summary string) error {
	return shared.FromValidation(FieldSummary, validation.Validate(summary, summaryRules()...))
}

func ValidateCategory(category string) error {
	return shared.FromValidation(FieldCategory, validation.Validate(category, categoryRules()...))
}

func ValidateTitle(title string) error {
	return shared.FromValidation(FieldTitle, validation.Validate(title, titleRules()...))
}

// Validate runs all four field rules and reports every violation.
// None of the rules reads another field, so order does not matter.
func (p *Post) Validate() error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Title, titleRules()...),
		validation.Field(&p.Content, contentRules()...),
		validation.Field(&p.Summary, summaryRules()...),
		validation.Field(&p.Category, categoryRules()...),
	)
	return shared.FromValidation("", err)
}
