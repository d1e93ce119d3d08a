package dto

type RecipeInput struct {
	UserEmail string `json:"userEmail"`
	FoodType  string `json:"foodType"`
}

type RecipeResponse struct {
	GroceryList string `json:"groceryList"`
	Recipe      string `json:"recipe"`
}
