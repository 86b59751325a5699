// Code generated by ent, DO NOT EDIT.

package application

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldJobTitle holds the string denoting the job_title field in the database.
	FieldJobTitle = "job_title"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldWorkArrangement holds the string denoting the work_arrangement field in the database.
	FieldWorkArrangement = "work_arrangement"
	// FieldSalary holds the string denoting the salary field in the database.
	FieldSalary = "salary"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldSeniority holds the string denoting the seniority field in the database.
	FieldSeniority = "seniority"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldBenefits holds the string denoting the benefits field in the database.
	FieldBenefits = "benefits"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEmailID holds the string denoting the email_id field in the database.
	FieldEmailID = "email_id"
	// FieldEmailSubject holds the string denoting the email_subject field in the database.
	FieldEmailSubject = "email_subject"
	// FieldEmailFrom holds the string denoting the email_from field in the database.
	FieldEmailFrom = "email_from"
	// FieldEmailDate holds the string denoting the email_date field in the database.
	FieldEmailDate = "email_date"
	// FieldAddedAt holds the string denoting the added_at field in the database.
	FieldAddedAt = "added_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the application in the database.
	Table = "applications"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldCompanyName,
	FieldJobTitle,
	FieldLocation,
	FieldWorkArrangement,
	FieldSalary,
	FieldJobType,
	FieldSeniority,
	FieldDepartment,
	FieldDescription,
	FieldSkills,
	FieldBenefits,
	FieldStatus,
	FieldSource,
	FieldConfidence,
	FieldEmailID,
	FieldEmailSubject,
	FieldEmailFrom,
	FieldEmailDate,
	FieldAddedAt,
	FieldUpdatedAt,
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
	// CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	CompanyNameValidator func(string) error
	// JobTitleValidator is a validator for the "job_title" field. It is called by the builders before save.
	JobTitleValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultAddedAt holds the default value on creation for the "added_at" field.
	DefaultAddedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Application queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByJobTitle orders the results by the job_title field.
func ByJobTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobTitle, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByWorkArrangement orders the results by the work_arrangement field.
func ByWorkArrangement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkArrangement, opts...).ToFunc()
}

// BySalary orders the results by the salary field.
func BySalary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalary, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// BySeniority orders the results by the seniority field.
func BySeniority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeniority, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEmailID orders the results by the email_id field.
func ByEmailID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailID, opts...).ToFunc()
}

// ByEmailSubject orders the results by the email_subject field.
func ByEmailSubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSubject, opts...).ToFunc()
}

// ByEmailFrom orders the results by the email_from field.
func ByEmailFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailFrom, opts...).ToFunc()
}

// ByEmailDate orders the results by the email_date field.
func ByEmailDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailDate, opts...).ToFunc()
}

// ByAddedAt orders the results by the added_at field.
func ByAddedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
