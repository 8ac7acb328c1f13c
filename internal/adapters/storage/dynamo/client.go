// Package dynamo implementa los stores de birds y sightings sobre DynamoDB.
// Cada colección es una tabla con partition key simple (name / id); las
// búsquedas secundarias son Scans con FilterExpression.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// API es el subconjunto de *dynamodb.Client que usan los repos.
type API interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

type Config struct {
	Region string
	// Endpoint vacío usa el de AWS; p.ej. http://localhost:8000 para DynamoDB Local.
	Endpoint       string
	BirdsTable     string
	SightingsTable string
}

// NewClient resuelve credenciales con la cadena por defecto del SDK (env, perfil, rol).
func NewClient(ctx context.Context, c Config) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{}
	if c.Region != "" {
		opts = append(opts, config.WithRegion(c.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

// EnsureTables crea las tablas si no existen y espera a que estén activas.
func EnsureTables(ctx context.Context, api API, c Config) error {
	tables := map[string]string{
		c.BirdsTable:     "name",
		c.SightingsTable: "id",
	}

	for table, key := range tables {
		_, err := api.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName: aws.String(table),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
			},
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
			},
			BillingMode: types.BillingModePayPerRequest,
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return fmt.Errorf("create table %s: %w", table, err)
			}
		}
	}

	for table := range tables {
		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(table),
		}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait for table %s: %w", table, err)
		}
	}
	return nil
}

// scanAll recorre todas las páginas del Scan y decodifica cada item en T.
func scanAll[T any](ctx context.Context, api API, in *dynamodb.ScanInput) ([]T, error) {
	out := make([]T, 0)

	paginator := dynamodb.NewScanPaginator(api, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
		out = append(out, items...)
	}
	return out, nil
}

func str(v string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: v}
}
