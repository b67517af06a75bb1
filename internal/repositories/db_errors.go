package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateEntryError reports whether the error is a MySQL/MariaDB unique
// key violation (1062). Used as a backstop behind the username pre-check so
// a concurrent insert still surfaces as a validation error.
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// isForeignKeyConstraintError reports a foreign key failure (1452), e.g. a
// response inserted for a complaint id that does not exist.
func isForeignKeyConstraintError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}
