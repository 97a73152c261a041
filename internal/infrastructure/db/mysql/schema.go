package mysql

import (
	"context"
	"database/sql"
)

// schema is the authoritative DDL. Unique keys back the facade's duplicate
// checks; ON DELETE CASCADE removes a user's places and reviews, and a
// place's reviews and amenity associations, with the parent row.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         CHAR(36) PRIMARY KEY,
		first_name VARCHAR(50)  NOT NULL,
		last_name  VARCHAR(50)  NOT NULL,
		email      VARCHAR(120) COLLATE utf8mb4_bin NOT NULL,
		password_hash VARCHAR(128) NOT NULL,
		is_admin   BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS places (
		id          CHAR(36) PRIMARY KEY,
		title       VARCHAR(99) NOT NULL,
		description TEXT,
		price       DECIMAL(10,2) NOT NULL,
		latitude    DOUBLE NOT NULL,
		longitude   DOUBLE NOT NULL,
		owner_id    CHAR(36) NOT NULL,
		created_at  DATETIME(6) NOT NULL,
		updated_at  DATETIME(6) NOT NULL,
		KEY idx_places_owner (owner_id),
		CONSTRAINT fk_places_owner FOREIGN KEY (owner_id)
			REFERENCES users (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS amenities (
		id         CHAR(36) PRIMARY KEY,
		name       VARCHAR(50) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_amenities_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id         CHAR(36) PRIMARY KEY,
		text       TEXT NOT NULL,
		rating     INT NOT NULL,
		place_id   CHAR(36) NOT NULL,
		user_id    CHAR(36) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_reviews_user_place (user_id, place_id),
		CONSTRAINT fk_reviews_place FOREIGN KEY (place_id)
			REFERENCES places (id) ON DELETE CASCADE,
		CONSTRAINT fk_reviews_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS place_amenity (
		place_id   CHAR(36) NOT NULL,
		amenity_id CHAR(36) NOT NULL,
		PRIMARY KEY (place_id, amenity_id),
		CONSTRAINT fk_pa_place FOREIGN KEY (place_id)
			REFERENCES places (id) ON DELETE CASCADE,
		CONSTRAINT fk_pa_amenity FOREIGN KEY (amenity_id)
			REFERENCES amenities (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates all tables when they do not yet exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
