package mysql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrNoReferencedRow = 1452
)

// translateConflict maps a MySQL duplicate-key error to the domain conflict
// sentinel for the violated unique key. Other errors pass through.
func translateConflict(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != mysqlErrDuplicateEntry {
		return err
	}
	switch {
	case strings.Contains(me.Message, "uq_users_email"):
		return domain.ErrEmailExists
	case strings.Contains(me.Message, "uq_amenities_name"):
		return domain.ErrAmenityExists
	case strings.Contains(me.Message, "uq_reviews_user_place"):
		return domain.ErrDuplicateReview
	}
	return err
}

// isMissingReference reports whether err is a foreign-key violation, meaning
// a referenced row disappeared between the facade check and the insert.
func isMissingReference(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrNoReferencedRow
}
