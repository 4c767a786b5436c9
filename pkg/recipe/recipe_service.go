package recipe

import (
	"context"
	"errors"
	"fmt"

	"recipe-share/domain"
	"recipe-share/entities"
	"recipe-share/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, req domain.ListRecipesRequest) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.CreateRecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) error
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		ReactToRecipe(ctx context.Context, req domain.ReactionRequest, recipeID, userID string) (domain.ReactionResponse, error)
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

func (s *recipeService) GetRecipes(ctx context.Context, req domain.ListRecipesRequest) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, req.Category, req.Title)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}

	return result, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.CreateRecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateRecipeResponse{}, domain.ErrParseUUID
	}

	recipeID := uuid.New()

	imageURL := ""
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("recipe-%s", recipeID.String()),
			req.Image,
			"recipes",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.CreateRecipeResponse{}, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	recipe := &entities.Recipe{
		ID:          recipeID,
		UserID:      userUUID,
		Title:       req.Title,
		Ingredient:  req.Ingredient,
		Instruction: req.Instruction,
		Category:    req.Category,
		ImageURL:    imageURL,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.CreateRecipeResponse{}, err
	}

	return domain.CreateRecipeResponse{RecipeID: recipeID.String()}, nil
}

// UpdateRecipe runs an owner-conditioned update: the row must match both the
// recipe id and the requesting user. The text fields go first so ownership
// is proven before any image is written to storage. The image column is set
// on every update, cleared when no new file was sent; when the upload fails
// the previous image stays in place.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) error {
	fields := map[string]interface{}{
		"title":       req.Title,
		"ingredient":  req.Ingredient,
		"instruction": req.Instruction,
		"category":    req.Category,
	}

	rows, err := s.recipeRepository.UpdateRecipeOwned(ctx, recipeID, userID, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return err
	}

	if req.Image == nil {
		if recipe.ImageURL != "" {
			if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
				_ = s.s3.DeleteFile(objectKey)
			}
		}
		_, err = s.recipeRepository.UpdateRecipeOwned(ctx, recipeID, userID, map[string]interface{}{
			"image_url": "",
		})
		return err
	}

	var objectKey string
	var uploadErr error

	if recipe.ImageURL != "" {
		if existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fmt.Sprintf("recipe-%s", recipeID), req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fmt.Sprintf("recipe-%s", recipeID), req.Image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	_, err = s.recipeRepository.UpdateRecipeOwned(ctx, recipeID, userID, map[string]interface{}{
		"image_url": s.s3.GetPublicLinkKey(objectKey),
	})
	return err
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	rows, err := s.recipeRepository.DeleteRecipeOwned(ctx, recipeID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecipeNotFound
	}

	// The row is gone; losing the stored object is not worth failing the
	// request over.
	if recipe.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return nil
}

func (s *recipeService) ReactToRecipe(ctx context.Context, req domain.ReactionRequest, recipeID, userID string) (domain.ReactionResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ReactionResponse{}, domain.ErrParseUUID
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReactionResponse{}, domain.ErrParseUUID
	}

	reaction := &entities.Reaction{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Reaction: req.Reaction,
	}

	rows, err := s.recipeRepository.UpsertReaction(ctx, reaction)
	if err != nil {
		return domain.ReactionResponse{}, err
	}

	return domain.ReactionResponse{AffectedRows: rows}, nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		UserID:      recipe.UserID.String(),
		Title:       recipe.Title,
		Ingredient:  recipe.Ingredient,
		Instruction: recipe.Instruction,
		Category:    recipe.Category,
		ImageURL:    recipe.ImageURL,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
}
