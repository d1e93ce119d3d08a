package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"grocery-recipe/dto"
	"grocery-recipe/infra"
	"grocery-recipe/models"
	"grocery-recipe/repositories"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoItems 買い物リストが空
var ErrNoItems = errors.New("no items found")

// RecipeGenerator プロンプトからレシピの文章を生成する
type RecipeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// BuildGroceryList "name (quantity), name (quantity)" の形式で連結する
func BuildGroceryList(items []models.Item) string {
	entries := make([]string, 0, len(items))
	for _, item := range items {
		entries = append(entries, item.GroceryEntry())
	}
	return strings.Join(entries, ", ")
}

func BuildRecipePrompt(groceryList string, foodType string) string {
	return fmt.Sprintf(
		"Here is my grocery list: %s. Please suggest a recipe (or multiple) that I can cook using only these ingredients. Write the recipe in simple steps for %s.",
		groceryList, foodType,
	)
}

type IRecipeService interface {
	Suggest(ctx context.Context, email string, foodType string) (*dto.RecipeResponse, error)
}

type RecipeService struct {
	repository repositories.IItemRepository
	generator  RecipeGenerator
	policy     RetryPolicy
	cache      *cache.Cache
}

// NewRecipeService cacheTTLの間レシピをキャッシュする。0ならキャッシュしない
func NewRecipeService(
	repository repositories.IItemRepository,
	generator RecipeGenerator,
	policy RetryPolicy,
	cacheTTL time.Duration,
) IRecipeService {
	s := &RecipeService{
		repository: repository,
		generator:  generator,
		policy:     policy,
	}
	if cacheTTL > 0 {
		s.cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return s
}

// recipeCacheKey 区切り文字を含む値でも衝突しないよう長さを前置する
func recipeCacheKey(email, foodType, groceryList string) string {
	return fmt.Sprintf("%d:%s%d:%s%s", len(email), email, len(foodType), foodType, groceryList)
}

func (s *RecipeService) Suggest(ctx context.Context, email string, foodType string) (*dto.RecipeResponse, error) {
	items, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	groceryList := BuildGroceryList(items)
	cacheKey := recipeCacheKey(email, foodType, groceryList)
	if s.cache != nil {
		if recipe, found := s.cache.Get(cacheKey); found {
			infra.RecipeCacheHits.Inc()
			return &dto.RecipeResponse{GroceryList: groceryList, Recipe: recipe.(string)}, nil
		}
	}

	prompt := BuildRecipePrompt(groceryList, foodType)
	recipe, err := Retry(ctx, s.policy, func(ctx context.Context) (string, error) {
		return s.generator.Generate(ctx, prompt)
	})
	if err != nil {
		return nil, errors.Wrap(err, "recipe generation failed")
	}

	if s.cache != nil {
		s.cache.SetDefault(cacheKey, recipe)
	}
	logrus.WithFields(logrus.Fields{
		"items":    len(items),
		"foodType": foodType,
	}).Debug("recipe generated")
	return &dto.RecipeResponse{GroceryList: groceryList, Recipe: recipe}, nil
}
