package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

const reviewColumns = "id, text, rating, place_id, user_id, created_at, updated_at"

// ReviewRepository is the MySQL ports.ReviewRepository.
type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews ("+reviewColumns+") VALUES (?,?,?,?,?,?,?)",
		rv.ID, rv.Text, rv.Rating, rv.PlaceID, rv.UserID, rv.CreatedAt, rv.UpdatedAt)
	if err != nil {
		if isMissingReference(err) {
			return domain.ErrPlaceNotFound
		}
		return translateConflict(err)
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	return scanReviewRow(r.db.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE id = ?", id))
}

func (r *ReviewRepository) GetByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error) {
	return scanReviewRow(r.db.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE user_id = ? AND place_id = ?", userID, placeID))
}

func (r *ReviewRepository) List(ctx context.Context) ([]*domain.Review, error) {
	return r.queryMany(ctx, "SELECT "+reviewColumns+" FROM reviews ORDER BY created_at")
}

func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID string) ([]*domain.Review, error) {
	return r.queryMany(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE place_id = ? ORDER BY created_at", placeID)
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE reviews SET text=?, rating=?, updated_at=? WHERE id=?",
		rv.Text, rv.Rating, rv.UpdatedAt, rv.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ReviewRepository) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Text, &rv.Rating, &rv.PlaceID, &rv.UserID,
			&rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}
	return reviews, rows.Err()
}

func scanReviewRow(row rowScanner) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.Text, &rv.Rating, &rv.PlaceID, &rv.UserID,
		&rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &rv, nil
}
