// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/scanjob"
)

// ScanJob is the model entity for the ScanJob schema.
type ScanJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Scanned holds the value of the "scanned" field.
	Scanned int `json:"scanned,omitempty"`
	// Relevant holds the value of the "relevant" field.
	Relevant int `json:"relevant,omitempty"`
	// Created holds the value of the "created" field.
	Created int `json:"created,omitempty"`
	// Updated holds the value of the "updated" field.
	Updated int `json:"updated,omitempty"`
	// Skipped holds the value of the "skipped" field.
	Skipped int `json:"skipped,omitempty"`
	// Failed holds the value of the "failed" field.
	Failed int `json:"failed,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScanJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scanjob.FieldScanned, scanjob.FieldRelevant, scanjob.FieldCreated, scanjob.FieldUpdated, scanjob.FieldSkipped, scanjob.FieldFailed:
			values[i] = new(sql.NullInt64)
		case scanjob.FieldStatus, scanjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case scanjob.FieldStartedAt, scanjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case scanjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScanJob fields.
func (_m *ScanJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scanjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scanjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case scanjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case scanjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case scanjob.FieldScanned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scanned", values[i])
			} else if value.Valid {
				_m.Scanned = int(value.Int64)
			}
		case scanjob.FieldRelevant:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field relevant", values[i])
			} else if value.Valid {
				_m.Relevant = int(value.Int64)
			}
		case scanjob.FieldCreated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created", values[i])
			} else if value.Valid {
				_m.Created = int(value.Int64)
			}
		case scanjob.FieldUpdated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated", values[i])
			} else if value.Valid {
				_m.Updated = int(value.Int64)
			}
		case scanjob.FieldSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = int(value.Int64)
			}
		case scanjob.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = int(value.Int64)
			}
		case scanjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScanJob.
// This includes values selected through modifiers, order, etc.
func (_m *ScanJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScanJob.
// Note that you need to call ScanJob.Unwrap() before calling this method if this ScanJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScanJob) Update() *ScanJobUpdateOne {
	return NewScanJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScanJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScanJob) Unwrap() *ScanJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScanJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScanJob) String() string {
	var builder strings.Builder
	builder.WriteString("ScanJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("scanned=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scanned))
	builder.WriteString(", ")
	builder.WriteString("relevant=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relevant))
	builder.WriteString(", ")
	builder.WriteString("created=")
	builder.WriteString(fmt.Sprintf("%v", _m.Created))
	builder.WriteString(", ")
	builder.WriteString("updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Updated))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ScanJobs is a parsable slice of ScanJob.
type ScanJobs []*ScanJob
