// Package response owns the wire representations. Serialization breaks the
// User<->Recipe cycle explicitly: a serialized user embeds recipes without
// their owner, a serialized recipe embeds its owner without their recipes.
// Password material never appears in any shape.
package response

import (
	"net/http"

	"ladle/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// User is the full user shape returned by signup, login and
// check_session.
type User struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	ImageURL string        `json:"image_url"`
	Bio      string        `json:"bio"`
	Recipes  []OwnedRecipe `json:"recipes"`
}

// OwnedRecipe is a recipe nested inside its owner. It carries the owner id
// but no embedded user, which is what stops the recursion.
type OwnedRecipe struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
	UserID            string `json:"user_id"`
}

// Recipe is the top-level recipe shape returned by the recipe endpoints.
// User is a pointer so a recipe without a preloaded owner omits the key
// instead of serializing a zero-value owner.
type Recipe struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
	User              *Owner `json:"user,omitempty"`
}

// Owner is a user nested inside a recipe, without the recipes collection.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// NewUser maps a domain user onto the wire shape.
func NewUser(user *entity.User) User {
	recipes := make([]OwnedRecipe, 0, len(user.Recipes))
	for _, recipe := range user.Recipes {
		recipes = append(recipes, OwnedRecipe{
			ID:                recipe.ID.String(),
			Title:             recipe.Title,
			Instructions:      recipe.Instructions,
			MinutesToComplete: recipe.MinutesToComplete,
			UserID:            recipe.UserID.String(),
		})
	}

	return User{
		ID:       user.ID.String(),
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
		Recipes:  recipes,
	}
}

// NewRecipe maps a domain recipe onto the wire shape. The owner must be
// preloaded.
func NewRecipe(recipe *entity.Recipe) Recipe {
	out := Recipe{
		ID:                recipe.ID.String(),
		Title:             recipe.Title,
		Instructions:      recipe.Instructions,
		MinutesToComplete: recipe.MinutesToComplete,
	}

	if recipe.User != nil {
		out.User = &Owner{
			ID:       recipe.User.ID.String(),
			Username: recipe.User.Username,
			ImageURL: recipe.User.ImageURL,
			Bio:      recipe.User.Bio,
		}
	}

	return out
}

// NewRecipeList maps a slice of domain recipes onto the wire shape.
func NewRecipeList(recipes []*entity.Recipe) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, NewRecipe(recipe))
	}

	return out
}

// Error writes the single-error body: {"error": "<msg>"}.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, map[string]string{"error": message})
}

// Errors writes the collection body: {"errors": ["<msg>", ...]}.
func Errors(c echo.Context, statusCode int, messages []string) error {
	return c.JSON(statusCode, map[string][]string{"errors": messages})
}

// Unauthorized writes the canonical 401 body.
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, "Unauthorized")
}
