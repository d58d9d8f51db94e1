// Package validation holds the field-level invariants for users and
// recipes. Validators are pure: they inspect a value and return nil or a
// typed AppError, nothing else. Username uniqueness is deliberately not
// checked here; the store enforces it at insert time.
package validation

import (
	"strings"
	"unicode/utf8"

	domainerrors "ladle/internal/domain/errors"
)

// MinInstructionsLength is inclusive: exactly this many characters passes.
const MinInstructionsLength = 50

// Username rejects blank or absent usernames.
func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return domainerrors.ErrUsernameRequired
	}

	return nil
}

// Password rejects an absent password field. No length or complexity rule
// applies at signup.
func Password(password string) error {
	if password == "" {
		return domainerrors.ErrPasswordRequired
	}

	return nil
}

// RecipeTitle rejects blank titles.
func RecipeTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.ErrTitleRequired
	}

	return nil
}

// RecipeInstructions rejects instructions shorter than
// MinInstructionsLength characters, counted in runes.
func RecipeInstructions(instructions string) error {
	if utf8.RuneCountInString(instructions) < MinInstructionsLength {
		return domainerrors.ErrInstructionsTooShort
	}

	return nil
}
