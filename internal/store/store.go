// Package store is the data access layer of the contact manager. Each
// operation executes exactly one parameterized SQL statement against the
// contacts table and normalizes the outcome into a sentinel error; raw
// driver errors are logged here and never returned to the caller.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"gitlab.com/noa.peled/contact-manager/internal/config"
	"gitlab.com/noa.peled/contact-manager/internal/model"
)

// Sentinel errors returned by the store. Callers match on these instead of
// inspecting driver errors.
var (
	// ErrNoFields is returned by UpdateContact when the update contains no
	// fields. The database is not touched in that case.
	ErrNoFields = errors.New("no fields to update")

	// ErrNotFound is returned when a statement affected zero rows. For
	// updates this also covers a row that matched but kept its old values;
	// the two cases cannot be told apart from the affected-row count.
	ErrNotFound = errors.New("contact not found")

	// ErrDuplicatePhone is returned by CreateContact when the insert
	// violates the unique constraint on the phone number.
	ErrDuplicatePhone = errors.New("phone number already in use")

	// ErrInternal is returned for any other database failure.
	ErrInternal = errors.New("database operation failed")
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation.
const mysqlDuplicateEntry = 1062

// db is a handle to the database.
var db *sqlx.DB

// insert is a prepared statement for creating a contact on the database.
var insert *sqlx.NamedStmt

// selectAll is a prepared statement for selecting all contacts.
var selectAll *sqlx.Stmt

// deleteWhereId is a prepared statement for deleting a contact with a given id.
var deleteWhereId *sqlx.Stmt

// CreateDatabase initializes and returns a database connection. The
// connection parameters are taken from the service configuration.
func CreateDatabase() *sql.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s",
		config.DBUser(), config.DBPassword(), config.DBHost(), config.DBPort(), config.DBName())
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	return sqlDB
}

// SetupDatabaseWrapper initializes the sqlx database wrapper with the specified sql database. It
// then prepares all statements. The database argument can be a real database for production use
// or a mock database within unit tests.
func SetupDatabaseWrapper(sqlDB *sql.DB) {
	var err error
	db = sqlx.NewDb(sqlDB, "mysql")

	// Prepared statements offer a significant speed increase if executed many times.
	insert, err = db.PrepareNamed(`
		INSERT INTO contacts (first_name, last_name, phone_number)
		VALUES (:first_name, :last_name, :phone_number)
	`)
	if err != nil {
		log.Fatal(err)
	}
	selectAll, err = db.Preparex(`
		SELECT * FROM contacts
	`)
	if err != nil {
		log.Fatal(err)
	}
	deleteWhereId, err = db.Preparex(`
		DELETE FROM contacts WHERE id = ?
	`)
	if err != nil {
		log.Fatal(err)
	}
}

// CreateContact inserts a new contact and returns the id assigned by the
// database. A unique-key violation on the phone number is reported as
// ErrDuplicatePhone, every other failure as ErrInternal.
func CreateContact(contact model.ContactCreate) (int64, error) {
	result, err := insert.Exec(&contact)
	if err != nil {
		log.Println("error creating contact:", err)
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return 0, ErrDuplicatePhone
		}
		return 0, ErrInternal
	}
	id, err := result.LastInsertId()
	if err != nil {
		log.Println("error reading new contact id:", err)
		return 0, ErrInternal
	}
	return id, nil
}

// AllContacts returns every contact in the table, in database-default order.
// An empty table yields an empty slice, not nil, so that it marshals to a
// JSON array.
func AllContacts() ([]model.Contact, error) {
	contacts := []model.Contact{}
	if err := selectAll.Select(&contacts); err != nil {
		log.Println("error retrieving contacts:", err)
		return nil, ErrInternal
	}
	return contacts, nil
}

// UpdateContact patches the contact with the given id, touching only the
// fields present in the update. An update without fields returns ErrNoFields
// before reaching the database. Zero affected rows yield ErrNotFound.
func UpdateContact(id int64, update model.ContactUpdate) error {
	// It only makes sense to continue if we have at least one value to update.
	if update.IsEmpty() {
		return ErrNoFields
	}

	var args []interface{}
	stmt := "UPDATE contacts SET "
	if update.FirstName != nil {
		args = append(args, update.FirstName)
		stmt += "first_name=?, "
	}
	if update.LastName != nil {
		args = append(args, update.LastName)
		stmt += "last_name=?, "
	}
	if update.PhoneNumber != nil {
		args = append(args, update.PhoneNumber)
		stmt += "phone_number=?, "
	}

	stmt = stmt[:len(stmt)-2]
	stmt += " WHERE id=?"
	args = append(args, id)
	result, err := db.Exec(stmt, args...)
	if err != nil {
		log.Println("error updating contact:", err)
		return ErrInternal
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Println("error updating contact:", err)
		return ErrInternal
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteContact removes the contact with the given id. Zero affected rows
// yield ErrNotFound.
func DeleteContact(id int64) error {
	result, err := deleteWhereId.Exec(id)
	if err != nil {
		log.Println("error deleting contact:", err)
		return ErrInternal
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Println("error deleting contact:", err)
		return ErrInternal
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
