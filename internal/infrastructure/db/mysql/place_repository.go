package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

const placeColumns = "id, title, description, price, latitude, longitude, owner_id, created_at, updated_at"

// PlaceRepository is the MySQL ports.PlaceRepository. Amenity associations
// live in the place_amenity join table and are loaded with each place.
type PlaceRepository struct {
	db *sql.DB
}

func NewPlaceRepository(db *sql.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) Create(ctx context.Context, p *domain.Place) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO places ("+placeColumns+") VALUES (?,?,?,?,?,?,?,?,?)",
		p.ID, p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.OwnerID,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isMissingReference(err) {
			return domain.ErrOwnerNotFound
		}
		return translateConflict(err)
	}
	return nil
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	p, err := r.scanOne(ctx, r.db.QueryRowContext(ctx,
		"SELECT "+placeColumns+" FROM places WHERE id = ?", id))
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlaceRepository) GetByTitle(ctx context.Context, title string) (*domain.Place, error) {
	return r.scanOne(ctx, r.db.QueryRowContext(ctx,
		"SELECT "+placeColumns+" FROM places WHERE title = ?", title))
}

func (r *PlaceRepository) List(ctx context.Context) ([]*domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+placeColumns+" FROM places ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []*domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range places {
		if p.AmenityIDs, err = r.amenityIDs(ctx, p.ID); err != nil {
			return nil, err
		}
	}
	return places, nil
}

func (r *PlaceRepository) Update(ctx context.Context, p *domain.Place) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE places SET title=?, description=?, price=?, latitude=?, longitude=?, owner_id=?, updated_at=? WHERE id=?",
		p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.OwnerID, p.UpdatedAt, p.ID)
	if err != nil {
		if isMissingReference(err) {
			return domain.ErrOwnerNotFound
		}
		return translateConflict(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// Delete removes the place; the schema cascades to its reviews and amenity
// associations.
func (r *PlaceRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM places WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddAmenity records the association. INSERT IGNORE keeps the operation
// idempotent at the storage layer as well.
func (r *PlaceRepository) AddAmenity(ctx context.Context, placeID, amenityID string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO place_amenity (place_id, amenity_id) VALUES (?,?)",
		placeID, amenityID)
	if err != nil && isMissingReference(err) {
		return domain.ErrPlaceNotFound
	}
	return err
}

func (r *PlaceRepository) amenityIDs(ctx context.Context, placeID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT amenity_id FROM place_amenity WHERE place_id = ?", placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PlaceRepository) scanOne(ctx context.Context, row rowScanner) (*domain.Place, error) {
	p, err := scanPlace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlaceNotFound
		}
		return nil, err
	}
	if p.AmenityIDs, err = r.amenityIDs(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func scanPlace(row rowScanner) (*domain.Place, error) {
	var p domain.Place
	var description sql.NullString
	err := row.Scan(&p.ID, &p.Title, &description, &p.Price, &p.Latitude, &p.Longitude,
		&p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	return &p, nil
}
