// Package validation checks create payloads before they reach storage.
//
// The rule set is an ordered slice of field rules; each rule either passes
// or contributes one violation. Validation runs on create only: update
// payloads are intentionally not routed through this package, so an update
// can write a title the create rules would reject. That asymmetry is part
// of the API's contract, not an accident of wiring.
package validation

import (
	"unicode/utf8"

	"github.com/forgo/todos/api/internal/model"
)

// minTitleLength is the smallest accepted title, counted in runes.
const minTitleLength = 3

// Rule inspects a create payload and returns a violation, or nil if the
// payload passes.
type Rule func(req model.CreateTodoRequest) *model.FieldError

// todoRules is the ordered rule set applied to create payloads.
var todoRules = []Rule{
	titleNotEmpty,
	titleMinLength,
}

// ValidateCreate runs every rule and returns the full ordered violation
// list. A nil result means the payload is valid.
func ValidateCreate(req model.CreateTodoRequest) []model.FieldError {
	var violations []model.FieldError
	for _, rule := range todoRules {
		if v := rule(req); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

func titleNotEmpty(req model.CreateTodoRequest) *model.FieldError {
	if req.Title == "" {
		return &model.FieldError{
			Field:   "title",
			Message: "title must not be empty",
		}
	}
	return nil
}

func titleMinLength(req model.CreateTodoRequest) *model.FieldError {
	if utf8.RuneCountInString(req.Title) < minTitleLength {
		return &model.FieldError{
			Field:   "title",
			Message: "title must be at least 3 characters long",
		}
	}
	return nil
}
