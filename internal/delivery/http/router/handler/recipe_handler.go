package handler

import (
	"net/http"

	"ladle/internal/delivery/http/middleware"
	"ladle/internal/delivery/http/response"
	"ladle/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for the recipe endpoints.
type RecipeHandler struct {
	uc usecase.RecipeUsecase
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// createRecipeRequest deliberately has no user_id field: ownership always
// comes from the session, whatever the body claims. The min length counts
// runes, matching the domain rule.
type createRecipeRequest struct {
	Title             string `json:"title" validate:"required"`
	Instructions      string `json:"instructions" validate:"required,min=50"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

// createRecipeFieldMessages maps recipe validation failures onto the
// messages clients display verbatim. Absent instructions are shorter than
// the minimum, so both tags share one message.
var createRecipeFieldMessages = map[string]string{
	"Title":        "Title is required",
	"Instructions": "Instructions must be at least 50 characters long",
}

// List handles GET /recipes.
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewRecipeList(recipes))
}

// Create handles POST /recipes.
func (h *RecipeHandler) Create(c echo.Context) error {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var input createRecipeRequest
	if err := c.Bind(&input); err != nil {
		return response.Errors(c, http.StatusUnprocessableEntity, []string{"Invalid recipe input"})
	}

	if err := c.Validate(&input); err != nil {
		return response.Errors(c, http.StatusUnprocessableEntity, fieldMessages(err, createRecipeFieldMessages))
	}

	recipe, err := h.uc.Create(c.Request().Context(), &usecase.CreateRecipeInput{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		OwnerID:           ownerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewRecipe(recipe))
}
