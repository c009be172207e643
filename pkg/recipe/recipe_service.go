package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
	"preplabel-backend/internal/utils/storage"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, orgID string, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, orgID string) error
		DeleteRecipe(ctx context.Context, id string, orgID string) error
		GetRecipes(ctx context.Context, orgID string, search string, page, limit int) ([]domain.RecipeResponse, int64, error)
		GetRecipeByID(ctx context.Context, id string, orgID string) (domain.RecipeResponse, error)
		UploadRecipeImage(ctx context.Context, id string, file *multipart.FileHeader, orgID string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, orgID string, userID string) (domain.RecipeResponse, error) {
	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		OrganizationID:  orgUUID,
		CreatedByID:     userUUID,
		Name:            req.Name,
		Description:     req.Description,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		YieldQuantity:   req.YieldQuantity,
		YieldUnit:       req.YieldUnit,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, id string, orgID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.OrganizationID.String() != orgID {
		return nil, domain.ErrUserNotAllowed
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, orgID string) error {
	recipe, err := s.getOwnedRecipe(ctx, id, orgID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.PrepTimeMinutes > 0 {
		recipe.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.CookTimeMinutes > 0 {
		recipe.CookTimeMinutes = req.CookTimeMinutes
	}
	if req.YieldQuantity > 0 {
		recipe.YieldQuantity = req.YieldQuantity
	}
	if req.YieldUnit != "" {
		recipe.YieldUnit = req.YieldUnit
	}
	if req.Ingredients != "" {
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != "" {
		recipe.Instructions = req.Instructions
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, orgID string) error {
	if _, err := s.getOwnedRecipe(ctx, id, orgID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipes(ctx context.Context, orgID string, search string, page, limit int) ([]domain.RecipeResponse, int64, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, orgID, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toRecipeResponse(recipe))
	}
	return response, count, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string, orgID string) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, orgID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, file *multipart.FileHeader, orgID string) (string, error) {
	recipe, err := s.getOwnedRecipe(ctx, id, orgID)
	if err != nil {
		return "", err
	}

	var objectKey string
	if existing := s.s3.GetObjectKeyFromLink(recipe.ImageURL); existing != "" {
		objectKey, err = s.s3.UpdateFile(existing, file, storage.AllowImage...)
	} else {
		fileName := fmt.Sprintf("%s%s", recipe.ID.String(), filepath.Ext(file.Filename))
		objectKey, err = s.s3.UploadFile(fileName, file, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ImageURL, nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Name:            recipe.Name,
		Description:     recipe.Description,
		ImageURL:        recipe.ImageURL,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		YieldQuantity:   recipe.YieldQuantity,
		YieldUnit:       recipe.YieldUnit,
		Ingredients:     recipe.Ingredients,
		Instructions:    recipe.Instructions,
		CreatedAt:       recipe.CreatedAt,
	}
}
