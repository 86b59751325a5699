// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/application"
)

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// JobTitle holds the value of the "job_title" field.
	JobTitle string `json:"job_title,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// WorkArrangement holds the value of the "work_arrangement" field.
	WorkArrangement string `json:"work_arrangement,omitempty"`
	// Salary holds the value of the "salary" field.
	Salary string `json:"salary,omitempty"`
	// JobType holds the value of the "job_type" field.
	JobType string `json:"job_type,omitempty"`
	// Seniority holds the value of the "seniority" field.
	Seniority string `json:"seniority,omitempty"`
	// Department holds the value of the "department" field.
	Department string `json:"department,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Skills holds the value of the "skills" field.
	Skills []string `json:"skills,omitempty"`
	// Benefits holds the value of the "benefits" field.
	Benefits []string `json:"benefits,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// EmailID holds the value of the "email_id" field.
	EmailID *string `json:"email_id,omitempty"`
	// EmailSubject holds the value of the "email_subject" field.
	EmailSubject *string `json:"email_subject,omitempty"`
	// EmailFrom holds the value of the "email_from" field.
	EmailFrom *string `json:"email_from,omitempty"`
	// EmailDate holds the value of the "email_date" field.
	EmailDate *time.Time `json:"email_date,omitempty"`
	// AddedAt holds the value of the "added_at" field.
	AddedAt time.Time `json:"added_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldSkills, application.FieldBenefits:
			values[i] = new([]byte)
		case application.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case application.FieldCompanyName, application.FieldJobTitle, application.FieldLocation, application.FieldWorkArrangement, application.FieldSalary, application.FieldJobType, application.FieldSeniority, application.FieldDepartment, application.FieldDescription, application.FieldStatus, application.FieldSource, application.FieldEmailID, application.FieldEmailSubject, application.FieldEmailFrom:
			values[i] = new(sql.NullString)
		case application.FieldEmailDate, application.FieldAddedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case application.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (_m *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case application.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case application.FieldJobTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_title", values[i])
			} else if value.Valid {
				_m.JobTitle = value.String
			}
		case application.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case application.FieldWorkArrangement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field work_arrangement", values[i])
			} else if value.Valid {
				_m.WorkArrangement = value.String
			}
		case application.FieldSalary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field salary", values[i])
			} else if value.Valid {
				_m.Salary = value.String
			}
		case application.FieldJobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_type", values[i])
			} else if value.Valid {
				_m.JobType = value.String
			}
		case application.FieldSeniority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field seniority", values[i])
			} else if value.Valid {
				_m.Seniority = value.String
			}
		case application.FieldDepartment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field department", values[i])
			} else if value.Valid {
				_m.Department = value.String
			}
		case application.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case application.FieldSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Skills); err != nil {
					return fmt.Errorf("unmarshal field skills: %w", err)
				}
			}
		case application.FieldBenefits:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field benefits", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Benefits); err != nil {
					return fmt.Errorf("unmarshal field benefits: %w", err)
				}
			}
		case application.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case application.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case application.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case application.FieldEmailID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_id", values[i])
			} else if value.Valid {
				_m.EmailID = new(string)
				*_m.EmailID = value.String
			}
		case application.FieldEmailSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_subject", values[i])
			} else if value.Valid {
				_m.EmailSubject = new(string)
				*_m.EmailSubject = value.String
			}
		case application.FieldEmailFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_from", values[i])
			} else if value.Valid {
				_m.EmailFrom = new(string)
				*_m.EmailFrom = value.String
			}
		case application.FieldEmailDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_date", values[i])
			} else if value.Valid {
				_m.EmailDate = new(time.Time)
				*_m.EmailDate = value.Time
			}
		case application.FieldAddedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field added_at", values[i])
			} else if value.Valid {
				_m.AddedAt = value.Time
			}
		case application.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (_m *Application) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Application) Unwrap() *Application {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("job_title=")
	builder.WriteString(_m.JobTitle)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("work_arrangement=")
	builder.WriteString(_m.WorkArrangement)
	builder.WriteString(", ")
	builder.WriteString("salary=")
	builder.WriteString(_m.Salary)
	builder.WriteString(", ")
	builder.WriteString("job_type=")
	builder.WriteString(_m.JobType)
	builder.WriteString(", ")
	builder.WriteString("seniority=")
	builder.WriteString(_m.Seniority)
	builder.WriteString(", ")
	builder.WriteString("department=")
	builder.WriteString(_m.Department)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skills))
	builder.WriteString(", ")
	builder.WriteString("benefits=")
	builder.WriteString(fmt.Sprintf("%v", _m.Benefits))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EmailID; v != nil {
		builder.WriteString("email_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmailSubject; v != nil {
		builder.WriteString("email_subject=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmailFrom; v != nil {
		builder.WriteString("email_from=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmailDate; v != nil {
		builder.WriteString("email_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("added_at=")
	builder.WriteString(_m.AddedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Applications is a parsable slice of Application.
type Applications []*Application
