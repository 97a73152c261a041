package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

const amenityColumns = "id, name, created_at, updated_at"

// AmenityRepository is the MySQL ports.AmenityRepository.
type AmenityRepository struct {
	db *sql.DB
}

func NewAmenityRepository(db *sql.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO amenities ("+amenityColumns+") VALUES (?,?,?,?)",
		a.ID, a.Name, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return translateConflict(err)
	}
	return nil
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	return scanAmenityRow(r.db.QueryRowContext(ctx,
		"SELECT "+amenityColumns+" FROM amenities WHERE id = ?", id))
}

func (r *AmenityRepository) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	return scanAmenityRow(r.db.QueryRowContext(ctx,
		"SELECT "+amenityColumns+" FROM amenities WHERE name = ?", name))
}

func (r *AmenityRepository) List(ctx context.Context) ([]*domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+amenityColumns+" FROM amenities ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var amenities []*domain.Amenity
	for rows.Next() {
		var a domain.Amenity
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		amenities = append(amenities, &a)
	}
	return amenities, rows.Err()
}

func (r *AmenityRepository) Update(ctx context.Context, a *domain.Amenity) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE amenities SET name=?, updated_at=? WHERE id=?",
		a.Name, a.UpdatedAt, a.ID)
	if err != nil {
		return translateConflict(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrAmenityNotFound
	}
	return nil
}

func scanAmenityRow(row rowScanner) (*domain.Amenity, error) {
	var a domain.Amenity
	err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAmenityNotFound
		}
		return nil, err
	}
	return &a, nil
}
