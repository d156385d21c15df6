package dynamo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/farmstand/internal/config"
)

// Bootstrap creates all DynamoDB tables if they don't already exist.
// Tables that already exist are skipped; any other failure is returned.
func Bootstrap(ctx context.Context, client API, tables config.DynamoTables) error {
	return createTable(ctx, client, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Products),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrProductID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrProductID), KeyType: types.KeyTypeHash},
		},
	})
}

func createTable(ctx context.Context, client API, input *dynamodb.CreateTableInput) error {
	_, err := client.CreateTable(ctx, input)
	if err != nil {
		// ResourceInUseException means the table already exists.
		var riue *types.ResourceInUseException
		if errors.As(err, &riue) {
			slog.Debug("table already exists", "table", *input.TableName)
			return nil
		}
		slog.Warn("could not create table", "table", *input.TableName, "err", err)
		return err
	}
	slog.Info("created table", "table", *input.TableName)
	return nil
}
