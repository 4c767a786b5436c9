package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Ingredient  string    `gorm:"type:text" json:"ingredient"`
	Instruction string    `gorm:"type:text" json:"instruction"`
	Category    string    `gorm:"index" json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

// Reaction holds at most one row per (recipe, user) pair; a second
// reaction from the same user overwrites the first.
type Reaction struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_recipe_user,priority:1" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_recipe_user,priority:2" json:"user_id"`
	Reaction string    `gorm:"not null" json:"reaction"` // "like" or "dislike"

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}
