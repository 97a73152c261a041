package mysql

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// ddl flattens the schema statements for contract assertions. Cascades run
// inside the engine, where sqlmock cannot observe them, so the DDL text is
// the testable contract.
func ddl() string {
	return strings.Join(schema, "\n")
}

func TestSchema_CascadeForeignKeys(t *testing.T) {
	cascades := []string{
		"fk_places_owner",  // users → places
		"fk_reviews_place", // places → reviews
		"fk_reviews_user",  // users → reviews
		"fk_pa_place",      // places → place_amenity
		"fk_pa_amenity",    // amenities → place_amenity
	}
	for _, name := range cascades {
		t.Run(name, func(t *testing.T) {
			// The constraint declaration must end in ON DELETE CASCADE.
			pattern := regexp.MustCompile(`CONSTRAINT ` + name + `(?s).*?ON DELETE CASCADE`)
			if !pattern.MatchString(ddl()) {
				t.Fatalf("constraint %s must cascade on delete", name)
			}
		})
	}
}

func TestSchema_UniqueKeys(t *testing.T) {
	for _, key := range []string{
		"UNIQUE KEY uq_users_email (email)",
		"UNIQUE KEY uq_amenities_name (name)",
		"UNIQUE KEY uq_reviews_user_place (user_id, place_id)",
	} {
		if !strings.Contains(ddl(), key) {
			t.Fatalf("missing unique key: %s", key)
		}
	}
}

func TestSchema_EmailIsBinaryCollated(t *testing.T) {
	// Exact-match duplicate detection, matching the in-memory backend: the
	// default utf8mb4 collation would treat Ada@x.com and ada@x.com as equal.
	if !strings.Contains(ddl(), "email      VARCHAR(120) COLLATE utf8mb4_bin NOT NULL") {
		t.Fatalf("users.email must use a binary collation")
	}
}

func TestEnsureSchema_ExecutesEveryStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	for range schema {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
