package postgres

import (
	"context"
	"database/sql"
	"errors"

	"bird-sightings/internal/domain/birds"
)

type BirdsRepo struct {
	db *sql.DB
}

func NewBirdsRepo(db *sql.DB) *BirdsRepo {
	return &BirdsRepo{db: db}
}

func (r *BirdsRepo) Save(ctx context.Context, b birds.Bird) (birds.Bird, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO birds (name, color, weight, height)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (name) DO UPDATE
		SET
			color = EXCLUDED.color,
			weight = EXCLUDED.weight,
			height = EXCLUDED.height
	`,
		b.Name,
		b.Color,
		b.Weight,
		b.Height,
	)
	if err != nil {
		return birds.Bird{}, err
	}
	return b, nil
}

// FindAll ordena por name.
func (r *BirdsRepo) FindAll(ctx context.Context) ([]birds.Bird, error) {
	return r.query(ctx, `
		SELECT name, color, weight, height
		FROM birds
		ORDER BY name
	`)
}

func (r *BirdsRepo) FindByName(ctx context.Context, name string) (birds.Bird, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, color, weight, height
		FROM birds
		WHERE name = $1
	`, name)

	var b birds.Bird
	if err := row.Scan(&b.Name, &b.Color, &b.Weight, &b.Height); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return birds.Bird{}, false, nil
		}
		return birds.Bird{}, false, err
	}
	return b, true, nil
}

func (r *BirdsRepo) FindByColor(ctx context.Context, color string) ([]birds.Bird, error) {
	return r.query(ctx, `
		SELECT name, color, weight, height
		FROM birds
		WHERE color = $1
		ORDER BY name
	`, color)
}

func (r *BirdsRepo) DeleteByName(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM birds WHERE name = $1`, name)
	return err
}

func (r *BirdsRepo) query(ctx context.Context, q string, args ...any) ([]birds.Bird, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]birds.Bird, 0)
	for rows.Next() {
		var b birds.Bird
		if err := rows.Scan(&b.Name, &b.Color, &b.Weight, &b.Height); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
