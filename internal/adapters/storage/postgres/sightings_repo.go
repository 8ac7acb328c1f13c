package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"bird-sightings/internal/domain/birds"
	"bird-sightings/internal/domain/sightings"

	"github.com/google/uuid"
)

type SightingsRepo struct {
	db *sql.DB
}

func NewSightingsRepo(db *sql.DB) *SightingsRepo {
	return &SightingsRepo{db: db}
}

// birdDoc es la forma persistida del snapshot dentro de sightings.bird.
type birdDoc struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Weight string `json:"weight"`
	Height string `json:"height"`
}

func toBirdDoc(b birds.Bird) ([]byte, error) {
	return json.Marshal(birdDoc{
		Name:   b.Name,
		Color:  b.Color,
		Weight: b.Weight,
		Height: b.Height,
	})
}

func (r *SightingsRepo) Save(ctx context.Context, s sightings.Sighting) (sightings.Sighting, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	doc, err := toBirdDoc(s.Bird)
	if err != nil {
		return sightings.Sighting{}, fmt.Errorf("encode bird: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sightings (id, bird, location, date)
		VALUES ($1, $2::jsonb, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET
			bird = EXCLUDED.bird,
			location = EXCLUDED.location,
			date = EXCLUDED.date
	`,
		s.ID,
		string(doc),
		s.Location,
		s.Date.Time(),
	)
	if err != nil {
		return sightings.Sighting{}, err
	}
	return s, nil
}

func (r *SightingsRepo) FindAll(ctx context.Context) ([]sightings.Sighting, error) {
	return r.query(ctx, `
		SELECT id, bird, location, date
		FROM sightings
		ORDER BY created_at, id
	`)
}

// FindByBird usa igualdad de jsonb: compara el documento completo, sin importar el orden de keys.
func (r *SightingsRepo) FindByBird(ctx context.Context, b birds.Bird) ([]sightings.Sighting, error) {
	doc, err := toBirdDoc(b)
	if err != nil {
		return nil, fmt.Errorf("encode bird: %w", err)
	}
	return r.query(ctx, `
		SELECT id, bird, location, date
		FROM sightings
		WHERE bird = $1::jsonb
		ORDER BY created_at, id
	`, string(doc))
}

func (r *SightingsRepo) FindByLocation(ctx context.Context, location string) ([]sightings.Sighting, error) {
	return r.query(ctx, `
		SELECT id, bird, location, date
		FROM sightings
		WHERE location = $1
		ORDER BY created_at, id
	`, location)
}

// FindByDateBetween: BETWEEN es inclusivo en ambos extremos.
func (r *SightingsRepo) FindByDateBetween(ctx context.Context, start, end sightings.Date) ([]sightings.Sighting, error) {
	return r.query(ctx, `
		SELECT id, bird, location, date
		FROM sightings
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, created_at, id
	`, start.Time(), end.Time())
}

func (r *SightingsRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sightings WHERE id = $1`, id)
	return err
}

func (r *SightingsRepo) query(ctx context.Context, q string, args ...any) ([]sightings.Sighting, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]sightings.Sighting, 0)
	for rows.Next() {
		var (
			s    sightings.Sighting
			raw  []byte
			date time.Time
			doc  birdDoc
		)
		if err := rows.Scan(&s.ID, &raw, &s.Location, &date); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode bird of sighting %s: %w", s.ID, err)
		}
		s.Bird = birds.Bird{
			Name:   doc.Name,
			Color:  doc.Color,
			Weight: doc.Weight,
			Height: doc.Height,
		}
		s.Date = sightings.DateOf(date)
		out = append(out, s)
	}
	return out, rows.Err()
}
