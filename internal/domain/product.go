package domain

// Categories lists every value a product's category may take.
var Categories = []string{"fruit", "vegetable", "dairy"}

type Product struct {
	ID       string   `json:"id" dynamodbav:"product_id"`
	Name     string   `json:"name" dynamodbav:"name" validate:"required"`
	Price    *float64 `json:"price" dynamodbav:"price" validate:"required,finite,gte=0"`
	Category string   `json:"category" dynamodbav:"category" validate:"required,oneof=fruit vegetable dairy"`
}

// ProductInput is the writable subset of a product, bound from forms or JSON.
// Price is a pointer so that a missing price can be told apart from zero.
type ProductInput struct {
	Name     string   `json:"name" mapstructure:"name" validate:"required"`
	Price    *float64 `json:"price" mapstructure:"price" validate:"required,finite,gte=0"`
	Category string   `json:"category" mapstructure:"category" validate:"required,oneof=fruit vegetable dairy"`
}

// ProductFilter narrows a product listing. An empty Category matches everything.
type ProductFilter struct {
	Category string
}
