// Code generated by ent, DO NOT EDIT.

package scanjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the scanjob type in the database.
	Label = "scan_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldScanned holds the string denoting the scanned field in the database.
	FieldScanned = "scanned"
	// FieldRelevant holds the string denoting the relevant field in the database.
	FieldRelevant = "relevant"
	// FieldCreated holds the string denoting the created field in the database.
	FieldCreated = "created"
	// FieldUpdated holds the string denoting the updated field in the database.
	FieldUpdated = "updated"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the scanjob in the database.
	Table = "scan_job"
)

// Columns holds all SQL columns for scanjob fields.
var Columns = []string{
	FieldID,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldScanned,
	FieldRelevant,
	FieldCreated,
	FieldUpdated,
	FieldSkipped,
	FieldFailed,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultScanned holds the default value on creation for the "scanned" field.
	DefaultScanned int
	// DefaultRelevant holds the default value on creation for the "relevant" field.
	DefaultRelevant int
	// DefaultCreated holds the default value on creation for the "created" field.
	DefaultCreated int
	// DefaultUpdated holds the default value on creation for the "updated" field.
	DefaultUpdated int
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ScanJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScanned orders the results by the scanned field.
func ByScanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanned, opts...).ToFunc()
}

// ByRelevant orders the results by the relevant field.
func ByRelevant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelevant, opts...).ToFunc()
}

// ByCreated orders the results by the created field.
func ByCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreated, opts...).ToFunc()
}

// ByUpdated orders the results by the updated field.
func ByUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdated, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
