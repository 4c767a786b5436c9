package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "Recipe created"
	MessageSuccessUpdateRecipe    = "Recipe updated"
	MessageSuccessDeleteRecipe    = "Recipe deleted"
	MessageSuccessSaveReaction    = "Reaction saved successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSaveReaction    = "failed to save reaction"

	// ErrRecipeNotFound also covers mutations by a non-owner: the two cases
	// are deliberately indistinguishable so a recipe's existence cannot be
	// probed by other users.
	ErrRecipeNotFound  = errors.New("recipe not found or unauthorized")
	ErrReactionInvalid = errors.New("invalid reaction type")
)

type (
	// ListRecipesRequest carries the whitelisted search filters. Any other
	// query parameter is ignored by the handler.
	ListRecipesRequest struct {
		Category string
		Title    string
	}

	CreateRecipeRequest struct {
		Title       string                `json:"title" form:"title" validate:"required"`
		Ingredient  string                `json:"ingredient" form:"ingredient" validate:"required"`
		Instruction string                `json:"instruction" form:"instruction" validate:"required"`
		Category    string                `json:"category" form:"category" validate:"required"`
		Image       *multipart.FileHeader `json:"-" form:"-" validate:"omitempty"`
	}

	UpdateRecipeRequest struct {
		Title       string                `json:"title" form:"title" validate:"required"`
		Ingredient  string                `json:"ingredient" form:"ingredient" validate:"required"`
		Instruction string                `json:"instruction" form:"instruction" validate:"required"`
		Category    string                `json:"category" form:"category" validate:"required"`
		Image       *multipart.FileHeader `json:"-" form:"-" validate:"omitempty"`
	}

	ReactionRequest struct {
		Reaction string `json:"reaction" validate:"required,oneof=like dislike"`
	}

	CreateRecipeResponse struct {
		RecipeID string `json:"recipeId"`
	}

	ReactionResponse struct {
		AffectedRows int64 `json:"affectedRows"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		UserID      string    `json:"userId"`
		Title       string    `json:"title"`
		Ingredient  string    `json:"ingredient"`
		Instruction string    `json:"instruction"`
		Category    string    `json:"category"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}
)
