package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipe    = "recipe retrieved successfully"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedGetRecipe    = "failed to retrieve recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	CreateRecipeRequest struct {
		Name            string  `json:"name" validate:"required"`
		Description     string  `json:"description" validate:"omitempty"`
		PrepTimeMinutes int     `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int     `json:"cook_time_minutes" validate:"omitempty,min=0"`
		YieldQuantity   float64 `json:"yield_quantity" validate:"omitempty,gt=0"`
		YieldUnit       string  `json:"yield_unit" validate:"omitempty"`
		Ingredients     string  `json:"ingredients" validate:"required"`
		Instructions    string  `json:"instructions" validate:"required"`
	}

	UpdateRecipeRequest struct {
		Name            string  `json:"name" validate:"omitempty"`
		Description     string  `json:"description" validate:"omitempty"`
		PrepTimeMinutes int     `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int     `json:"cook_time_minutes" validate:"omitempty,min=0"`
		YieldQuantity   float64 `json:"yield_quantity" validate:"omitempty,gt=0"`
		YieldUnit       string  `json:"yield_unit" validate:"omitempty"`
		Ingredients     string  `json:"ingredients" validate:"omitempty"`
		Instructions    string  `json:"instructions" validate:"omitempty"`
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		Name            string    `json:"name"`
		Description     string    `json:"description,omitempty"`
		ImageURL        string    `json:"image_url,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		YieldQuantity   float64   `json:"yield_quantity"`
		YieldUnit       string    `json:"yield_unit,omitempty"`
		Ingredients     string    `json:"ingredients"`
		Instructions    string    `json:"instructions"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
