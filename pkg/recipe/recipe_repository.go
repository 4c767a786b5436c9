package recipe

import (
	"context"

	"recipe-share/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, category, title string) ([]*entities.Recipe, error)
		UpdateRecipeOwned(ctx context.Context, recipeID, ownerID string, fields map[string]interface{}) (int64, error)
		DeleteRecipeOwned(ctx context.Context, recipeID, ownerID string) (int64, error)
		UpsertReaction(ctx context.Context, reaction *entities.Reaction) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes applies only the whitelisted filters: category by equality,
// title by substring match.
func (r *recipeRepository) GetRecipes(ctx context.Context, category, title string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if title != "" {
		query = query.Where("title LIKE ?", "%"+title+"%")
	}

	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

// UpdateRecipeOwned conditions the UPDATE on both id and owner, so a zero
// row count covers "absent" and "not owner" alike.
func (r *recipeRepository) UpdateRecipeOwned(ctx context.Context, recipeID, ownerID string, fields map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, ownerID).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *recipeRepository) DeleteRecipeOwned(ctx context.Context, recipeID, ownerID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", recipeID, ownerID).
		Delete(&entities.Recipe{})
	return tx.RowsAffected, tx.Error
}

func (r *recipeRepository) UpsertReaction(ctx context.Context, reaction *entities.Reaction) (int64, error) {
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"reaction", "updated_at"}),
		}).
		Create(reaction)
	return tx.RowsAffected, tx.Error
}
