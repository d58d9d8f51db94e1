package validation

import (
	"strings"
	"testing"

	domainerrors "ladle/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("chef_anna"))
	assert.ErrorIs(t, Username(""), domainerrors.ErrUsernameRequired)
	assert.ErrorIs(t, Username("   "), domainerrors.ErrUsernameRequired)
	assert.ErrorIs(t, Username("\t\n"), domainerrors.ErrUsernameRequired)
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("secret123"))
	assert.ErrorIs(t, Password(""), domainerrors.ErrPasswordRequired)
}

func TestRecipeTitle(t *testing.T) {
	assert.NoError(t, RecipeTitle("Shakshuka"))
	assert.ErrorIs(t, RecipeTitle(""), domainerrors.ErrTitleRequired)
	assert.ErrorIs(t, RecipeTitle("  "), domainerrors.ErrTitleRequired)
}

func TestRecipeInstructions_Boundary(t *testing.T) {
	short := strings.Repeat("a", MinInstructionsLength-1)
	exact := strings.Repeat("a", MinInstructionsLength)
	long := strings.Repeat("a", MinInstructionsLength+1)

	assert.ErrorIs(t, RecipeInstructions(short), domainerrors.ErrInstructionsTooShort)
	assert.NoError(t, RecipeInstructions(exact))
	assert.NoError(t, RecipeInstructions(long))
}

func TestRecipeInstructions_CountsRunesNotBytes(t *testing.T) {
	// 50 multibyte runes pass even though the byte count is higher.
	multibyte := strings.Repeat("é", MinInstructionsLength)

	assert.NoError(t, RecipeInstructions(multibyte))
	assert.ErrorIs(t, RecipeInstructions(strings.Repeat("é", MinInstructionsLength-1)), domainerrors.ErrInstructionsTooShort)
}
