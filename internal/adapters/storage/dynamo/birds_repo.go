package dynamo

import (
	"context"
	"fmt"

	"bird-sightings/internal/domain/birds"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type birdItem struct {
	Name   string `dynamodbav:"name"`
	Color  string `dynamodbav:"color"`
	Weight string `dynamodbav:"weight"`
	Height string `dynamodbav:"height"`
}

func toBirdItem(b birds.Bird) birdItem {
	return birdItem{Name: b.Name, Color: b.Color, Weight: b.Weight, Height: b.Height}
}

func (i birdItem) bird() birds.Bird {
	return birds.Bird{Name: i.Name, Color: i.Color, Weight: i.Weight, Height: i.Height}
}

type BirdsRepo struct {
	api   API
	table string
}

func NewBirdsRepo(api API, table string) *BirdsRepo {
	return &BirdsRepo{api: api, table: table}
}

// Save usa PutItem: reemplaza el item completo si el name ya existe.
func (r *BirdsRepo) Save(ctx context.Context, b birds.Bird) (birds.Bird, error) {
	item, err := attributevalue.MarshalMap(toBirdItem(b))
	if err != nil {
		return birds.Bird{}, fmt.Errorf("encode bird: %w", err)
	}
	if _, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return birds.Bird{}, err
	}
	return b, nil
}

// FindAll devuelve los items en orden de Scan (no definido).
func (r *BirdsRepo) FindAll(ctx context.Context) ([]birds.Bird, error) {
	items, err := scanAll[birdItem](ctx, r.api, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}
	return toBirds(items), nil
}

func (r *BirdsRepo) FindByName(ctx context.Context, name string) (birds.Bird, bool, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            map[string]types.AttributeValue{"name": str(name)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return birds.Bird{}, false, err
	}
	if len(out.Item) == 0 {
		return birds.Bird{}, false, nil
	}

	var item birdItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return birds.Bird{}, false, fmt.Errorf("decode bird: %w", err)
	}
	return item.bird(), true, nil
}

func (r *BirdsRepo) FindByColor(ctx context.Context, color string) ([]birds.Bird, error) {
	items, err := scanAll[birdItem](ctx, r.api, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          aws.String("#color = :color"),
		ExpressionAttributeNames:  map[string]string{"#color": "color"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":color": str(color)},
	})
	if err != nil {
		return nil, err
	}
	return toBirds(items), nil
}

// DeleteByName: DeleteItem sobre una key inexistente no falla.
func (r *BirdsRepo) DeleteByName(ctx context.Context, name string) error {
	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       map[string]types.AttributeValue{"name": str(name)},
	})
	return err
}

func toBirds(items []birdItem) []birds.Bird {
	out := make([]birds.Bird, 0, len(items))
	for _, i := range items {
		out = append(out, i.bird())
	}
	return out
}
