package dynamo

import (
	"context"
	"fmt"

	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/domain/sightings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// sightingItem guarda el bird como map anidado y la fecha como "YYYY-MM-DD",
// que ordena lexicográficamente igual que cronológicamente.
type sightingItem struct {
	ID       string   `dynamodbav:"id"`
	Bird     birdItem `dynamodbav:"bird"`
	Location string   `dynamodbav:"location"`
	Date     string   `dynamodbav:"date"`
}

type SightingsRepo struct {
	api   API
	table string
}

func NewSightingsRepo(api API, table string) *SightingsRepo {
	return &SightingsRepo{api: api, table: table}
}

func (r *SightingsRepo) Save(ctx context.Context, s sightings.Sighting) (sightings.Sighting, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	item, err := attributevalue.MarshalMap(sightingItem{
		ID:       s.ID,
		Bird:     toBirdItem(s.Bird),
		Location: s.Location,
		Date:     s.Date.String(),
	})
	if err != nil {
		return sightings.Sighting{}, fmt.Errorf("encode sighting: %w", err)
	}
	if _, err := r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return sightings.Sighting{}, err
	}
	return s, nil
}

func (r *SightingsRepo) FindAll(ctx context.Context) ([]sightings.Sighting, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.table)})
}

// FindByBird exige igualdad en los cuatro campos del snapshot.
func (r *SightingsRepo) FindByBird(ctx context.Context, b birds.Bird) ([]sightings.Sighting, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
		FilterExpression: aws.String(
			"#bird.#name = :name AND #bird.#color = :color AND #bird.#weight = :weight AND #bird.#height = :height",
		),
		ExpressionAttributeNames: map[string]string{
			"#bird":   "bird",
			"#name":   "name",
			"#color":  "color",
			"#weight": "weight",
			"#height": "height",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":   str(b.Name),
			":color":  str(b.Color),
			":weight": str(b.Weight),
			":height": str(b.Height),
		},
	})
}

func (r *SightingsRepo) FindByLocation(ctx context.Context, location string) ([]sightings.Sighting, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          aws.String("#location = :location"),
		ExpressionAttributeNames:  map[string]string{"#location": "location"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":location": str(location)},
	})
}

// FindByDateBetween: BETWEEN de DynamoDB es inclusivo.
func (r *SightingsRepo) FindByDateBetween(ctx context.Context, start, end sightings.Date) ([]sightings.Sighting, error) {
	if end.Before(start) {
		// DynamoDB rechaza BETWEEN con límites invertidos (ValidationException).
		return []sightings.Sighting{}, nil
	}
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.table),
		FilterExpression:         aws.String("#date BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{"#date": "date"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":start": str(start.String()),
			":end":   str(end.String()),
		},
	})
}

func (r *SightingsRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       map[string]types.AttributeValue{"id": str(id)},
	})
	return err
}

func (r *SightingsRepo) scan(ctx context.Context, in *dynamodb.ScanInput) ([]sightings.Sighting, error) {
	items, err := scanAll[sightingItem](ctx, r.api, in)
	if err != nil {
		return nil, err
	}

	out := make([]sightings.Sighting, 0, len(items))
	for _, i := range items {
		d, err := sightings.ParseDate(i.Date)
		if err != nil {
			return nil, fmt.Errorf("decode sighting %s: %w", i.ID, err)
		}
		out = append(out, sightings.Sighting{
			ID:       i.ID,
			Bird:     i.Bird.bird(),
			Location: i.Location,
			Date:     d,
		})
	}
	return out, nil
}
