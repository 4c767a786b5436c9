package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"recipe-share/entities"
	"recipe-share/internal/api/handlers"
	"recipe-share/internal/api/routes"
	"recipe-share/internal/middleware"
	"recipe-share/internal/utils"
	"recipe-share/pkg/jwt"
	"recipe-share/pkg/recipe"
	"recipe-share/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeS3 struct{}

func (fakeS3) UploadFile(name string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	return fmt.Sprintf("%s/%s", folder, name), nil
}

func (fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	return objectKey, nil
}

func (fakeS3) DeleteFile(objectKey string) error { return nil }

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (fakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.s3.region.amazonaws.com/")
}

type testEnv struct {
	app           *fiber.App
	db            *gorm.DB
	jwtService    jwt.JWTService
	userService   user.UserService
	recipeService recipe.RecipeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	utils.InitValidator()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.Recipe{}, &entities.Reaction{}))

	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(user.NewUserRepository(db), jwtService)
	recipeService := recipe.NewRecipeService(recipe.NewRecipeRepository(db), fakeS3{})

	app := fiber.New()
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   handlers.NewUserHandler(userService, utils.Validate),
		RecipeHandler: handlers.NewRecipeHandler(recipeService, utils.Validate),
		Middleware:    middleware.NewMiddleware(),
		JWTService:    jwtService,
	}
	routesConfig.Setup()

	return &testEnv{
		app:           app,
		db:            db,
		jwtService:    jwtService,
		userService:   userService,
		recipeService: recipeService,
	}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
