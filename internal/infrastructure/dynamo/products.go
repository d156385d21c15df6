package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/farmstand/internal/domain"
	"github.com/farmstand/internal/pkg/validate"
)

// DynamoDB attribute names for the products table.
const (
	attrProductID = "product_id"
	attrName      = "name"
	attrPrice     = "price"
	attrCategory  = "category"
)

const productEntity = "Product"

// ProductRepo provides typed DynamoDB operations for the products table.
// Writes run the product validators first; a failed rule is returned as
// *domain.ValidationError. Lookups by ID return nil, nil when nothing matches.
type ProductRepo struct {
	client    API
	tableName string
}

func NewProductRepo(client API, tableName string) *ProductRepo {
	return &ProductRepo{client: client, tableName: tableName}
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	if err := validate.Struct(productEntity, p); err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *ProductRepo) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(attrProductID, productID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	var p domain.Product
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// Find scans the table, following pagination, and applies the category
// filter server-side when one is set.
func (r *ProductRepo) Find(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if filter.Category != "" {
		in.FilterExpression = aws.String("#c = :c")
		in.ExpressionAttributeNames = map[string]string{"#c": attrCategory}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: filter.Category},
		}
	}

	products := []domain.Product{}
	for {
		out, err := r.client.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var page []domain.Product
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal products: %w", err)
		}
		products = append(products, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return products, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// FindByIDAndUpdate validates patch, applies it to an existing item and
// returns the updated product.
func (r *ProductRepo) FindByIDAndUpdate(ctx context.Context, productID string, patch domain.ProductInput) (*domain.Product, error) {
	if err := validate.Struct(productEntity, patch); err != nil {
		return nil, err
	}
	ue, err := buildUpdateExpr(map[string]interface{}{
		attrName:     patch.Name,
		attrPrice:    *patch.Price,
		attrCategory: patch.Category,
	})
	if err != nil {
		return nil, err
	}
	ue.Names["#pk"] = attrProductID

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey(attrProductID, productID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(#pk)"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, nil
		}
		return nil, err
	}
	var p domain.Product
	if err := attributevalue.UnmarshalMap(out.Attributes, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

// FindByIDAndDelete removes the item and returns what was stored, or nil if
// there was nothing to delete.
func (r *ProductRepo) FindByIDAndDelete(ctx context.Context, productID string) (*domain.Product, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          strKey(attrProductID, productID),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, err
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	var p domain.Product
	if err := attributevalue.UnmarshalMap(out.Attributes, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}
