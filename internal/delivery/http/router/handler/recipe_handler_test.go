package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecipeHandler_List_Unauthorized(t *testing.T) {
	fx := newTestServer(t)

	rec := doJSON(fx, http.MethodGet, "/recipes", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRecipeHandler_List_StaleCookie(t *testing.T) {
	fx := newTestServer(t)

	fx.sessions.EXPECT().Get("stale-token").Return(uuid.Nil, false)

	rec := doJSON(fx, http.MethodGet, "/recipes", "",
		&http.Cookie{Name: testCookieName, Value: "stale-token"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRecipeHandler_List_Success(t *testing.T) {
	fx := newTestServer(t)

	userID := uuid.New()
	owner := &entity.User{ID: userID, Username: "chef_anna", Bio: "Weeknight cook"}
	recipes := []*entity.Recipe{
		{
			ID:           uuid.New(),
			Title:        "Shakshuka",
			Instructions: strings.Repeat("Simmer tomatoes, crack the eggs, cover. ", 3),
			UserID:       userID,
			User:         owner,
		},
	}

	fx.sessions.EXPECT().Get("session-token").Return(userID, true)
	fx.recipeUC.EXPECT().List(mock.Anything).Return(recipes, nil)

	rec := doJSON(fx, http.MethodGet, "/recipes", "",
		&http.Cookie{Name: testCookieName, Value: "session-token"})

	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"title":"Shakshuka"`)
	// The embedded owner never carries their recipes collection back.
	assert.Contains(t, body, `"username":"chef_anna"`)
	assert.NotContains(t, body, `"recipes":`)
	assert.NotContains(t, body, "password")
}

func TestRecipeHandler_List_Empty(t *testing.T) {
	fx := newTestServer(t)

	userID := uuid.New()
	fx.sessions.EXPECT().Get("session-token").Return(userID, true)
	fx.recipeUC.EXPECT().List(mock.Anything).Return([]*entity.Recipe{}, nil)

	rec := doJSON(fx, http.MethodGet, "/recipes", "",
		&http.Cookie{Name: testCookieName, Value: "session-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRecipeHandler_Create_Success(t *testing.T) {
	fx := newTestServer(t)

	userID := uuid.New()
	owner := &entity.User{ID: userID, Username: "chef_anna"}
	instructions := strings.Repeat("Whisk, rest, fry until golden on both sides. ", 2)

	fx.sessions.EXPECT().Get("session-token").Return(userID, true)

	var captured *usecase.CreateRecipeInput
	fx.recipeUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateRecipeInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
			captured = input

			return &entity.Recipe{
				ID:           uuid.New(),
				Title:        input.Title,
				Instructions: input.Instructions,
				UserID:       input.OwnerID,
				User:         owner,
			}, nil
		})

	rec := doJSON(fx, http.MethodPost, "/recipes",
		`{"title":"Crepes","instructions":"`+instructions+`","minutes_to_complete":25}`,
		&http.Cookie{Name: testCookieName, Value: "session-token"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, userID, captured.OwnerID)
	require.NotNil(t, captured.MinutesToComplete)
	assert.Equal(t, 25, *captured.MinutesToComplete)
	assert.Contains(t, rec.Body.String(), `"title":"Crepes"`)
	assert.Contains(t, rec.Body.String(), `"username":"chef_anna"`)
}

func TestRecipeHandler_Create_IgnoresClientUserID(t *testing.T) {
	fx := newTestServer(t)

	sessionUserID := uuid.New()
	instructions := strings.Repeat("Whisk, rest, fry until golden on both sides. ", 2)

	fx.sessions.EXPECT().Get("session-token").Return(sessionUserID, true)

	var captured *usecase.CreateRecipeInput
	fx.recipeUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateRecipeInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
			captured = input

			return &entity.Recipe{
				ID:           uuid.New(),
				Title:        input.Title,
				Instructions: input.Instructions,
				UserID:       input.OwnerID,
				User:         &entity.User{ID: sessionUserID},
			}, nil
		})

	// The body names another user; ownership still follows the session.
	rec := doJSON(fx, http.MethodPost, "/recipes",
		`{"title":"Crepes","instructions":"`+instructions+`","user_id":"`+uuid.NewString()+`"}`,
		&http.Cookie{Name: testCookieName, Value: "session-token"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, sessionUserID, captured.OwnerID)
}

func TestRecipeHandler_Create_ShortInstructions(t *testing.T) {
	fx := newTestServer(t)

	userID := uuid.New()
	fx.sessions.EXPECT().Get("session-token").Return(userID, true)

	// Request validation rejects the short field before the usecase runs.
	rec := doJSON(fx, http.MethodPost, "/recipes",
		`{"title":"Crepes","instructions":"Mix and fry."}`,
		&http.Cookie{Name: testCookieName, Value: "session-token"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":["Instructions must be at least 50 characters long"]}`, rec.Body.String())
}

func TestRecipeHandler_Create_MissingTitle(t *testing.T) {
	fx := newTestServer(t)

	userID := uuid.New()
	fx.sessions.EXPECT().Get("session-token").Return(userID, true)

	rec := doJSON(fx, http.MethodPost, "/recipes",
		`{"title":"","instructions":"`+strings.Repeat("a", 60)+`"}`,
		&http.Cookie{Name: testCookieName, Value: "session-token"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":["Title is required"]}`, rec.Body.String())
}

func TestRecipeHandler_Create_WhitespaceTitle(t *testing.T) {
	fx := newTestServer(t)

	userID := uuid.New()
	fx.sessions.EXPECT().Get("session-token").Return(userID, true)

	// A whitespace title survives the required tag; the domain validator
	// inside the usecase still rejects it with the same wire shape.
	fx.recipeUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateRecipeInput")).
		Return(nil, errors.Wrap(domainerrors.ErrTitleRequired, "recipe rejected"))

	rec := doJSON(fx, http.MethodPost, "/recipes",
		`{"title":"   ","instructions":"`+strings.Repeat("a", 60)+`"}`,
		&http.Cookie{Name: testCookieName, Value: "session-token"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":["Title is required"]}`, rec.Body.String())
}

func TestRecipeHandler_Create_Unauthorized(t *testing.T) {
	fx := newTestServer(t)

	rec := doJSON(fx, http.MethodPost, "/recipes", `{"title":"Crepes"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}
