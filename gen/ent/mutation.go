// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/application"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/predicate"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/scanjob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication = "Application"
	TypeScanJob     = "ScanJob"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	company_name     *string
	job_title        *string
	location         *string
	work_arrangement *string
	salary           *string
	job_type         *string
	seniority        *string
	department       *string
	description      *string
	skills           *[]string
	appendskills     []string
	benefits         *[]string
	appendbenefits   []string
	status           *string
	source           *string
	confidence       *float32
	addconfidence    *float32
	email_id         *string
	email_subject    *string
	email_from       *string
	email_date       *time.Time
	added_at         *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Application, error)
	predicates       []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id uuid.UUID) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Application entities.
func (m *ApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyName sets the "company_name" field.
func (m *ApplicationMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *ApplicationMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *ApplicationMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetJobTitle sets the "job_title" field.
func (m *ApplicationMutation) SetJobTitle(s string) {
	m.job_title = &s
}

// JobTitle returns the value of the "job_title" field in the mutation.
func (m *ApplicationMutation) JobTitle() (r string, exists bool) {
	v := m.job_title
	if v == nil {
		return
	}
	return *v, true
}

// OldJobTitle returns the old "job_title" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldJobTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobTitle: %w", err)
	}
	return oldValue.JobTitle, nil
}

// ResetJobTitle resets all changes to the "job_title" field.
func (m *ApplicationMutation) ResetJobTitle() {
	m.job_title = nil
}

// SetLocation sets the "location" field.
func (m *ApplicationMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *ApplicationMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *ApplicationMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[application.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *ApplicationMutation) LocationCleared() bool {
	_, ok := m.clearedFields[application.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *ApplicationMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, application.FieldLocation)
}

// SetWorkArrangement sets the "work_arrangement" field.
func (m *ApplicationMutation) SetWorkArrangement(s string) {
	m.work_arrangement = &s
}

// WorkArrangement returns the value of the "work_arrangement" field in the mutation.
func (m *ApplicationMutation) WorkArrangement() (r string, exists bool) {
	v := m.work_arrangement
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkArrangement returns the old "work_arrangement" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldWorkArrangement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkArrangement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkArrangement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkArrangement: %w", err)
	}
	return oldValue.WorkArrangement, nil
}

// ClearWorkArrangement clears the value of the "work_arrangement" field.
func (m *ApplicationMutation) ClearWorkArrangement() {
	m.work_arrangement = nil
	m.clearedFields[application.FieldWorkArrangement] = struct{}{}
}

// WorkArrangementCleared returns if the "work_arrangement" field was cleared in this mutation.
func (m *ApplicationMutation) WorkArrangementCleared() bool {
	_, ok := m.clearedFields[application.FieldWorkArrangement]
	return ok
}

// ResetWorkArrangement resets all changes to the "work_arrangement" field.
func (m *ApplicationMutation) ResetWorkArrangement() {
	m.work_arrangement = nil
	delete(m.clearedFields, application.FieldWorkArrangement)
}

// SetSalary sets the "salary" field.
func (m *ApplicationMutation) SetSalary(s string) {
	m.salary = &s
}

// Salary returns the value of the "salary" field in the mutation.
func (m *ApplicationMutation) Salary() (r string, exists bool) {
	v := m.salary
	if v == nil {
		return
	}
	return *v, true
}

// OldSalary returns the old "salary" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSalary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalary: %w", err)
	}
	return oldValue.Salary, nil
}

// ClearSalary clears the value of the "salary" field.
func (m *ApplicationMutation) ClearSalary() {
	m.salary = nil
	m.clearedFields[application.FieldSalary] = struct{}{}
}

// SalaryCleared returns if the "salary" field was cleared in this mutation.
func (m *ApplicationMutation) SalaryCleared() bool {
	_, ok := m.clearedFields[application.FieldSalary]
	return ok
}

// ResetSalary resets all changes to the "salary" field.
func (m *ApplicationMutation) ResetSalary() {
	m.salary = nil
	delete(m.clearedFields, application.FieldSalary)
}

// SetJobType sets the "job_type" field.
func (m *ApplicationMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *ApplicationMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ClearJobType clears the value of the "job_type" field.
func (m *ApplicationMutation) ClearJobType() {
	m.job_type = nil
	m.clearedFields[application.FieldJobType] = struct{}{}
}

// JobTypeCleared returns if the "job_type" field was cleared in this mutation.
func (m *ApplicationMutation) JobTypeCleared() bool {
	_, ok := m.clearedFields[application.FieldJobType]
	return ok
}

// ResetJobType resets all changes to the "job_type" field.
func (m *ApplicationMutation) ResetJobType() {
	m.job_type = nil
	delete(m.clearedFields, application.FieldJobType)
}

// SetSeniority sets the "seniority" field.
func (m *ApplicationMutation) SetSeniority(s string) {
	m.seniority = &s
}

// Seniority returns the value of the "seniority" field in the mutation.
func (m *ApplicationMutation) Seniority() (r string, exists bool) {
	v := m.seniority
	if v == nil {
		return
	}
	return *v, true
}

// OldSeniority returns the old "seniority" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSeniority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeniority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeniority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeniority: %w", err)
	}
	return oldValue.Seniority, nil
}

// ClearSeniority clears the value of the "seniority" field.
func (m *ApplicationMutation) ClearSeniority() {
	m.seniority = nil
	m.clearedFields[application.FieldSeniority] = struct{}{}
}

// SeniorityCleared returns if the "seniority" field was cleared in this mutation.
func (m *ApplicationMutation) SeniorityCleared() bool {
	_, ok := m.clearedFields[application.FieldSeniority]
	return ok
}

// ResetSeniority resets all changes to the "seniority" field.
func (m *ApplicationMutation) ResetSeniority() {
	m.seniority = nil
	delete(m.clearedFields, application.FieldSeniority)
}

// SetDepartment sets the "department" field.
func (m *ApplicationMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *ApplicationMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *ApplicationMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[application.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *ApplicationMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[application.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *ApplicationMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, application.FieldDepartment)
}

// SetDescription sets the "description" field.
func (m *ApplicationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ApplicationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ApplicationMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[application.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ApplicationMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[application.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ApplicationMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, application.FieldDescription)
}

// SetSkills sets the "skills" field.
func (m *ApplicationMutation) SetSkills(s []string) {
	m.skills = &s
	m.appendskills = nil
}

// Skills returns the value of the "skills" field in the mutation.
func (m *ApplicationMutation) Skills() (r []string, exists bool) {
	v := m.skills
	if v == nil {
		return
	}
	return *v, true
}

// OldSkills returns the old "skills" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkills: %w", err)
	}
	return oldValue.Skills, nil
}

// AppendSkills adds s to the "skills" field.
func (m *ApplicationMutation) AppendSkills(s []string) {
	m.appendskills = append(m.appendskills, s...)
}

// AppendedSkills returns the list of values that were appended to the "skills" field in this mutation.
func (m *ApplicationMutation) AppendedSkills() ([]string, bool) {
	if len(m.appendskills) == 0 {
		return nil, false
	}
	return m.appendskills, true
}

// ClearSkills clears the value of the "skills" field.
func (m *ApplicationMutation) ClearSkills() {
	m.skills = nil
	m.appendskills = nil
	m.clearedFields[application.FieldSkills] = struct{}{}
}

// SkillsCleared returns if the "skills" field was cleared in this mutation.
func (m *ApplicationMutation) SkillsCleared() bool {
	_, ok := m.clearedFields[application.FieldSkills]
	return ok
}

// ResetSkills resets all changes to the "skills" field.
func (m *ApplicationMutation) ResetSkills() {
	m.skills = nil
	m.appendskills = nil
	delete(m.clearedFields, application.FieldSkills)
}

// SetBenefits sets the "benefits" field.
func (m *ApplicationMutation) SetBenefits(s []string) {
	m.benefits = &s
	m.appendbenefits = nil
}

// Benefits returns the value of the "benefits" field in the mutation.
func (m *ApplicationMutation) Benefits() (r []string, exists bool) {
	v := m.benefits
	if v == nil {
		return
	}
	return *v, true
}

// OldBenefits returns the old "benefits" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldBenefits(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBenefits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBenefits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBenefits: %w", err)
	}
	return oldValue.Benefits, nil
}

// AppendBenefits adds s to the "benefits" field.
func (m *ApplicationMutation) AppendBenefits(s []string) {
	m.appendbenefits = append(m.appendbenefits, s...)
}

// AppendedBenefits returns the list of values that were appended to the "benefits" field in this mutation.
func (m *ApplicationMutation) AppendedBenefits() ([]string, bool) {
	if len(m.appendbenefits) == 0 {
		return nil, false
	}
	return m.appendbenefits, true
}

// ClearBenefits clears the value of the "benefits" field.
func (m *ApplicationMutation) ClearBenefits() {
	m.benefits = nil
	m.appendbenefits = nil
	m.clearedFields[application.FieldBenefits] = struct{}{}
}

// BenefitsCleared returns if the "benefits" field was cleared in this mutation.
func (m *ApplicationMutation) BenefitsCleared() bool {
	_, ok := m.clearedFields[application.FieldBenefits]
	return ok
}

// ResetBenefits resets all changes to the "benefits" field.
func (m *ApplicationMutation) ResetBenefits() {
	m.benefits = nil
	m.appendbenefits = nil
	delete(m.clearedFields, application.FieldBenefits)
}

// SetStatus sets the "status" field.
func (m *ApplicationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ApplicationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetSource sets the "source" field.
func (m *ApplicationMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ApplicationMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ApplicationMutation) ResetSource() {
	m.source = nil
}

// SetConfidence sets the "confidence" field.
func (m *ApplicationMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ApplicationMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ApplicationMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ApplicationMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ApplicationMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[application.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ApplicationMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[application.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ApplicationMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, application.FieldConfidence)
}

// SetEmailID sets the "email_id" field.
func (m *ApplicationMutation) SetEmailID(s string) {
	m.email_id = &s
}

// EmailID returns the value of the "email_id" field in the mutation.
func (m *ApplicationMutation) EmailID() (r string, exists bool) {
	v := m.email_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailID returns the old "email_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldEmailID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailID: %w", err)
	}
	return oldValue.EmailID, nil
}

// ClearEmailID clears the value of the "email_id" field.
func (m *ApplicationMutation) ClearEmailID() {
	m.email_id = nil
	m.clearedFields[application.FieldEmailID] = struct{}{}
}

// EmailIDCleared returns if the "email_id" field was cleared in this mutation.
func (m *ApplicationMutation) EmailIDCleared() bool {
	_, ok := m.clearedFields[application.FieldEmailID]
	return ok
}

// ResetEmailID resets all changes to the "email_id" field.
func (m *ApplicationMutation) ResetEmailID() {
	m.email_id = nil
	delete(m.clearedFields, application.FieldEmailID)
}

// SetEmailSubject sets the "email_subject" field.
func (m *ApplicationMutation) SetEmailSubject(s string) {
	m.email_subject = &s
}

// EmailSubject returns the value of the "email_subject" field in the mutation.
func (m *ApplicationMutation) EmailSubject() (r string, exists bool) {
	v := m.email_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailSubject returns the old "email_subject" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldEmailSubject(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailSubject: %w", err)
	}
	return oldValue.EmailSubject, nil
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (m *ApplicationMutation) ClearEmailSubject() {
	m.email_subject = nil
	m.clearedFields[application.FieldEmailSubject] = struct{}{}
}

// EmailSubjectCleared returns if the "email_subject" field was cleared in this mutation.
func (m *ApplicationMutation) EmailSubjectCleared() bool {
	_, ok := m.clearedFields[application.FieldEmailSubject]
	return ok
}

// ResetEmailSubject resets all changes to the "email_subject" field.
func (m *ApplicationMutation) ResetEmailSubject() {
	m.email_subject = nil
	delete(m.clearedFields, application.FieldEmailSubject)
}

// SetEmailFrom sets the "email_from" field.
func (m *ApplicationMutation) SetEmailFrom(s string) {
	m.email_from = &s
}

// EmailFrom returns the value of the "email_from" field in the mutation.
func (m *ApplicationMutation) EmailFrom() (r string, exists bool) {
	v := m.email_from
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailFrom returns the old "email_from" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldEmailFrom(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailFrom: %w", err)
	}
	return oldValue.EmailFrom, nil
}

// ClearEmailFrom clears the value of the "email_from" field.
func (m *ApplicationMutation) ClearEmailFrom() {
	m.email_from = nil
	m.clearedFields[application.FieldEmailFrom] = struct{}{}
}

// EmailFromCleared returns if the "email_from" field was cleared in this mutation.
func (m *ApplicationMutation) EmailFromCleared() bool {
	_, ok := m.clearedFields[application.FieldEmailFrom]
	return ok
}

// ResetEmailFrom resets all changes to the "email_from" field.
func (m *ApplicationMutation) ResetEmailFrom() {
	m.email_from = nil
	delete(m.clearedFields, application.FieldEmailFrom)
}

// SetEmailDate sets the "email_date" field.
func (m *ApplicationMutation) SetEmailDate(t time.Time) {
	m.email_date = &t
}

// EmailDate returns the value of the "email_date" field in the mutation.
func (m *ApplicationMutation) EmailDate() (r time.Time, exists bool) {
	v := m.email_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailDate returns the old "email_date" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldEmailDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailDate: %w", err)
	}
	return oldValue.EmailDate, nil
}

// ClearEmailDate clears the value of the "email_date" field.
func (m *ApplicationMutation) ClearEmailDate() {
	m.email_date = nil
	m.clearedFields[application.FieldEmailDate] = struct{}{}
}

// EmailDateCleared returns if the "email_date" field was cleared in this mutation.
func (m *ApplicationMutation) EmailDateCleared() bool {
	_, ok := m.clearedFields[application.FieldEmailDate]
	return ok
}

// ResetEmailDate resets all changes to the "email_date" field.
func (m *ApplicationMutation) ResetEmailDate() {
	m.email_date = nil
	delete(m.clearedFields, application.FieldEmailDate)
}

// SetAddedAt sets the "added_at" field.
func (m *ApplicationMutation) SetAddedAt(t time.Time) {
	m.added_at = &t
}

// AddedAt returns the value of the "added_at" field in the mutation.
func (m *ApplicationMutation) AddedAt() (r time.Time, exists bool) {
	v := m.added_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAddedAt returns the old "added_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldAddedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddedAt: %w", err)
	}
	return oldValue.AddedAt, nil
}

// ResetAddedAt resets all changes to the "added_at" field.
func (m *ApplicationMutation) ResetAddedAt() {
	m.added_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.company_name != nil {
		fields = append(fields, application.FieldCompanyName)
	}
	if m.job_title != nil {
		fields = append(fields, application.FieldJobTitle)
	}
	if m.location != nil {
		fields = append(fields, application.FieldLocation)
	}
	if m.work_arrangement != nil {
		fields = append(fields, application.FieldWorkArrangement)
	}
	if m.salary != nil {
		fields = append(fields, application.FieldSalary)
	}
	if m.job_type != nil {
		fields = append(fields, application.FieldJobType)
	}
	if m.seniority != nil {
		fields = append(fields, application.FieldSeniority)
	}
	if m.department != nil {
		fields = append(fields, application.FieldDepartment)
	}
	if m.description != nil {
		fields = append(fields, application.FieldDescription)
	}
	if m.skills != nil {
		fields = append(fields, application.FieldSkills)
	}
	if m.benefits != nil {
		fields = append(fields, application.FieldBenefits)
	}
	if m.status != nil {
		fields = append(fields, application.FieldStatus)
	}
	if m.source != nil {
		fields = append(fields, application.FieldSource)
	}
	if m.confidence != nil {
		fields = append(fields, application.FieldConfidence)
	}
	if m.email_id != nil {
		fields = append(fields, application.FieldEmailID)
	}
	if m.email_subject != nil {
		fields = append(fields, application.FieldEmailSubject)
	}
	if m.email_from != nil {
		fields = append(fields, application.FieldEmailFrom)
	}
	if m.email_date != nil {
		fields = append(fields, application.FieldEmailDate)
	}
	if m.added_at != nil {
		fields = append(fields, application.FieldAddedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldCompanyName:
		return m.CompanyName()
	case application.FieldJobTitle:
		return m.JobTitle()
	case application.FieldLocation:
		return m.Location()
	case application.FieldWorkArrangement:
		return m.WorkArrangement()
	case application.FieldSalary:
		return m.Salary()
	case application.FieldJobType:
		return m.JobType()
	case application.FieldSeniority:
		return m.Seniority()
	case application.FieldDepartment:
		return m.Department()
	case application.FieldDescription:
		return m.Description()
	case application.FieldSkills:
		return m.Skills()
	case application.FieldBenefits:
		return m.Benefits()
	case application.FieldStatus:
		return m.Status()
	case application.FieldSource:
		return m.Source()
	case application.FieldConfidence:
		return m.Confidence()
	case application.FieldEmailID:
		return m.EmailID()
	case application.FieldEmailSubject:
		return m.EmailSubject()
	case application.FieldEmailFrom:
		return m.EmailFrom()
	case application.FieldEmailDate:
		return m.EmailDate()
	case application.FieldAddedAt:
		return m.AddedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case application.FieldJobTitle:
		return m.OldJobTitle(ctx)
	case application.FieldLocation:
		return m.OldLocation(ctx)
	case application.FieldWorkArrangement:
		return m.OldWorkArrangement(ctx)
	case application.FieldSalary:
		return m.OldSalary(ctx)
	case application.FieldJobType:
		return m.OldJobType(ctx)
	case application.FieldSeniority:
		return m.OldSeniority(ctx)
	case application.FieldDepartment:
		return m.OldDepartment(ctx)
	case application.FieldDescription:
		return m.OldDescription(ctx)
	case application.FieldSkills:
		return m.OldSkills(ctx)
	case application.FieldBenefits:
		return m.OldBenefits(ctx)
	case application.FieldStatus:
		return m.OldStatus(ctx)
	case application.FieldSource:
		return m.OldSource(ctx)
	case application.FieldConfidence:
		return m.OldConfidence(ctx)
	case application.FieldEmailID:
		return m.OldEmailID(ctx)
	case application.FieldEmailSubject:
		return m.OldEmailSubject(ctx)
	case application.FieldEmailFrom:
		return m.OldEmailFrom(ctx)
	case application.FieldEmailDate:
		return m.OldEmailDate(ctx)
	case application.FieldAddedAt:
		return m.OldAddedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case application.FieldJobTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobTitle(v)
		return nil
	case application.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case application.FieldWorkArrangement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkArrangement(v)
		return nil
	case application.FieldSalary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalary(v)
		return nil
	case application.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case application.FieldSeniority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeniority(v)
		return nil
	case application.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case application.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case application.FieldSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkills(v)
		return nil
	case application.FieldBenefits:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBenefits(v)
		return nil
	case application.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case application.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case application.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case application.FieldEmailID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailID(v)
		return nil
	case application.FieldEmailSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailSubject(v)
		return nil
	case application.FieldEmailFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailFrom(v)
		return nil
	case application.FieldEmailDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailDate(v)
		return nil
	case application.FieldAddedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, application.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case application.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case application.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldLocation) {
		fields = append(fields, application.FieldLocation)
	}
	if m.FieldCleared(application.FieldWorkArrangement) {
		fields = append(fields, application.FieldWorkArrangement)
	}
	if m.FieldCleared(application.FieldSalary) {
		fields = append(fields, application.FieldSalary)
	}
	if m.FieldCleared(application.FieldJobType) {
		fields = append(fields, application.FieldJobType)
	}
	if m.FieldCleared(application.FieldSeniority) {
		fields = append(fields, application.FieldSeniority)
	}
	if m.FieldCleared(application.FieldDepartment) {
		fields = append(fields, application.FieldDepartment)
	}
	if m.FieldCleared(application.FieldDescription) {
		fields = append(fields, application.FieldDescription)
	}
	if m.FieldCleared(application.FieldSkills) {
		fields = append(fields, application.FieldSkills)
	}
	if m.FieldCleared(application.FieldBenefits) {
		fields = append(fields, application.FieldBenefits)
	}
	if m.FieldCleared(application.FieldConfidence) {
		fields = append(fields, application.FieldConfidence)
	}
	if m.FieldCleared(application.FieldEmailID) {
		fields = append(fields, application.FieldEmailID)
	}
	if m.FieldCleared(application.FieldEmailSubject) {
		fields = append(fields, application.FieldEmailSubject)
	}
	if m.FieldCleared(application.FieldEmailFrom) {
		fields = append(fields, application.FieldEmailFrom)
	}
	if m.FieldCleared(application.FieldEmailDate) {
		fields = append(fields, application.FieldEmailDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldLocation:
		m.ClearLocation()
		return nil
	case application.FieldWorkArrangement:
		m.ClearWorkArrangement()
		return nil
	case application.FieldSalary:
		m.ClearSalary()
		return nil
	case application.FieldJobType:
		m.ClearJobType()
		return nil
	case application.FieldSeniority:
		m.ClearSeniority()
		return nil
	case application.FieldDepartment:
		m.ClearDepartment()
		return nil
	case application.FieldDescription:
		m.ClearDescription()
		return nil
	case application.FieldSkills:
		m.ClearSkills()
		return nil
	case application.FieldBenefits:
		m.ClearBenefits()
		return nil
	case application.FieldConfidence:
		m.ClearConfidence()
		return nil
	case application.FieldEmailID:
		m.ClearEmailID()
		return nil
	case application.FieldEmailSubject:
		m.ClearEmailSubject()
		return nil
	case application.FieldEmailFrom:
		m.ClearEmailFrom()
		return nil
	case application.FieldEmailDate:
		m.ClearEmailDate()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case application.FieldJobTitle:
		m.ResetJobTitle()
		return nil
	case application.FieldLocation:
		m.ResetLocation()
		return nil
	case application.FieldWorkArrangement:
		m.ResetWorkArrangement()
		return nil
	case application.FieldSalary:
		m.ResetSalary()
		return nil
	case application.FieldJobType:
		m.ResetJobType()
		return nil
	case application.FieldSeniority:
		m.ResetSeniority()
		return nil
	case application.FieldDepartment:
		m.ResetDepartment()
		return nil
	case application.FieldDescription:
		m.ResetDescription()
		return nil
	case application.FieldSkills:
		m.ResetSkills()
		return nil
	case application.FieldBenefits:
		m.ResetBenefits()
		return nil
	case application.FieldStatus:
		m.ResetStatus()
		return nil
	case application.FieldSource:
		m.ResetSource()
		return nil
	case application.FieldConfidence:
		m.ResetConfidence()
		return nil
	case application.FieldEmailID:
		m.ResetEmailID()
		return nil
	case application.FieldEmailSubject:
		m.ResetEmailSubject()
		return nil
	case application.FieldEmailFrom:
		m.ResetEmailFrom()
		return nil
	case application.FieldEmailDate:
		m.ResetEmailDate()
		return nil
	case application.FieldAddedAt:
		m.ResetAddedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Application edge %s", name)
}

// ScanJobMutation represents an operation that mutates the ScanJob nodes in the graph.
type ScanJobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	started_at    *time.Time
	finished_at   *time.Time
	status        *string
	scanned       *int
	addscanned    *int
	relevant      *int
	addrelevant   *int
	created       *int
	addcreated    *int
	updated       *int
	addupdated    *int
	skipped       *int
	addskipped    *int
	failed        *int
	addfailed     *int
	error_message *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ScanJob, error)
	predicates    []predicate.ScanJob
}

var _ ent.Mutation = (*ScanJobMutation)(nil)

// scanjobOption allows management of the mutation configuration using functional options.
type scanjobOption func(*ScanJobMutation)

// newScanJobMutation creates new mutation for the ScanJob entity.
func newScanJobMutation(c config, op Op, opts ...scanjobOption) *ScanJobMutation {
	m := &ScanJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScanJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanJobID sets the ID field of the mutation.
func withScanJobID(id uuid.UUID) scanjobOption {
	return func(m *ScanJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanJob
		)
		m.oldValue = func(ctx context.Context) (*ScanJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanJob sets the old ScanJob of the mutation.
func withScanJob(node *ScanJob) scanjobOption {
	return func(m *ScanJobMutation) {
		m.oldValue = func(context.Context) (*ScanJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanJob entities.
func (m *ScanJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStartedAt sets the "started_at" field.
func (m *ScanJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScanJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScanJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ScanJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ScanJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ScanJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[scanjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ScanJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ScanJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, scanjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ScanJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScanJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScanJobMutation) ResetStatus() {
	m.status = nil
}

// SetScanned sets the "scanned" field.
func (m *ScanJobMutation) SetScanned(i int) {
	m.scanned = &i
	m.addscanned = nil
}

// Scanned returns the value of the "scanned" field in the mutation.
func (m *ScanJobMutation) Scanned() (r int, exists bool) {
	v := m.scanned
	if v == nil {
		return
	}
	return *v, true
}

// OldScanned returns the old "scanned" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldScanned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanned: %w", err)
	}
	return oldValue.Scanned, nil
}

// AddScanned adds i to the "scanned" field.
func (m *ScanJobMutation) AddScanned(i int) {
	if m.addscanned != nil {
		*m.addscanned += i
	} else {
		m.addscanned = &i
	}
}

// AddedScanned returns the value that was added to the "scanned" field in this mutation.
func (m *ScanJobMutation) AddedScanned() (r int, exists bool) {
	v := m.addscanned
	if v == nil {
		return
	}
	return *v, true
}

// ResetScanned resets all changes to the "scanned" field.
func (m *ScanJobMutation) ResetScanned() {
	m.scanned = nil
	m.addscanned = nil
}

// SetRelevant sets the "relevant" field.
func (m *ScanJobMutation) SetRelevant(i int) {
	m.relevant = &i
	m.addrelevant = nil
}

// Relevant returns the value of the "relevant" field in the mutation.
func (m *ScanJobMutation) Relevant() (r int, exists bool) {
	v := m.relevant
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevant returns the old "relevant" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldRelevant(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevant: %w", err)
	}
	return oldValue.Relevant, nil
}

// AddRelevant adds i to the "relevant" field.
func (m *ScanJobMutation) AddRelevant(i int) {
	if m.addrelevant != nil {
		*m.addrelevant += i
	} else {
		m.addrelevant = &i
	}
}

// AddedRelevant returns the value that was added to the "relevant" field in this mutation.
func (m *ScanJobMutation) AddedRelevant() (r int, exists bool) {
	v := m.addrelevant
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevant resets all changes to the "relevant" field.
func (m *ScanJobMutation) ResetRelevant() {
	m.relevant = nil
	m.addrelevant = nil
}

// SetCreated sets the "created" field.
func (m *ScanJobMutation) SetCreated(i int) {
	m.created = &i
	m.addcreated = nil
}

// Created returns the value of the "created" field in the mutation.
func (m *ScanJobMutation) Created() (r int, exists bool) {
	v := m.created
	if v == nil {
		return
	}
	return *v, true
}

// OldCreated returns the old "created" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldCreated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreated: %w", err)
	}
	return oldValue.Created, nil
}

// AddCreated adds i to the "created" field.
func (m *ScanJobMutation) AddCreated(i int) {
	if m.addcreated != nil {
		*m.addcreated += i
	} else {
		m.addcreated = &i
	}
}

// AddedCreated returns the value that was added to the "created" field in this mutation.
func (m *ScanJobMutation) AddedCreated() (r int, exists bool) {
	v := m.addcreated
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreated resets all changes to the "created" field.
func (m *ScanJobMutation) ResetCreated() {
	m.created = nil
	m.addcreated = nil
}

// SetUpdated sets the "updated" field.
func (m *ScanJobMutation) SetUpdated(i int) {
	m.updated = &i
	m.addupdated = nil
}

// Updated returns the value of the "updated" field in the mutation.
func (m *ScanJobMutation) Updated() (r int, exists bool) {
	v := m.updated
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdated returns the old "updated" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldUpdated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdated: %w", err)
	}
	return oldValue.Updated, nil
}

// AddUpdated adds i to the "updated" field.
func (m *ScanJobMutation) AddUpdated(i int) {
	if m.addupdated != nil {
		*m.addupdated += i
	} else {
		m.addupdated = &i
	}
}

// AddedUpdated returns the value that was added to the "updated" field in this mutation.
func (m *ScanJobMutation) AddedUpdated() (r int, exists bool) {
	v := m.addupdated
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdated resets all changes to the "updated" field.
func (m *ScanJobMutation) ResetUpdated() {
	m.updated = nil
	m.addupdated = nil
}

// SetSkipped sets the "skipped" field.
func (m *ScanJobMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *ScanJobMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *ScanJobMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *ScanJobMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *ScanJobMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetFailed sets the "failed" field.
func (m *ScanJobMutation) SetFailed(i int) {
	m.failed = &i
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *ScanJobMutation) Failed() (r int, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds i to the "failed" field.
func (m *ScanJobMutation) AddFailed(i int) {
	if m.addfailed != nil {
		*m.addfailed += i
	} else {
		m.addfailed = &i
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *ScanJobMutation) AddedFailed() (r int, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *ScanJobMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ScanJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScanJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScanJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scanjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScanJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScanJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scanjob.FieldErrorMessage)
}

// Where appends a list predicates to the ScanJobMutation builder.
func (m *ScanJobMutation) Where(ps ...predicate.ScanJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanJob).
func (m *ScanJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.started_at != nil {
		fields = append(fields, scanjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, scanjob.FieldStatus)
	}
	if m.scanned != nil {
		fields = append(fields, scanjob.FieldScanned)
	}
	if m.relevant != nil {
		fields = append(fields, scanjob.FieldRelevant)
	}
	if m.created != nil {
		fields = append(fields, scanjob.FieldCreated)
	}
	if m.updated != nil {
		fields = append(fields, scanjob.FieldUpdated)
	}
	if m.skipped != nil {
		fields = append(fields, scanjob.FieldSkipped)
	}
	if m.failed != nil {
		fields = append(fields, scanjob.FieldFailed)
	}
	if m.error_message != nil {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldStartedAt:
		return m.StartedAt()
	case scanjob.FieldFinishedAt:
		return m.FinishedAt()
	case scanjob.FieldStatus:
		return m.Status()
	case scanjob.FieldScanned:
		return m.Scanned()
	case scanjob.FieldRelevant:
		return m.Relevant()
	case scanjob.FieldCreated:
		return m.Created()
	case scanjob.FieldUpdated:
		return m.Updated()
	case scanjob.FieldSkipped:
		return m.Skipped()
	case scanjob.FieldFailed:
		return m.Failed()
	case scanjob.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scanjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case scanjob.FieldStatus:
		return m.OldStatus(ctx)
	case scanjob.FieldScanned:
		return m.OldScanned(ctx)
	case scanjob.FieldRelevant:
		return m.OldRelevant(ctx)
	case scanjob.FieldCreated:
		return m.OldCreated(ctx)
	case scanjob.FieldUpdated:
		return m.OldUpdated(ctx)
	case scanjob.FieldSkipped:
		return m.OldSkipped(ctx)
	case scanjob.FieldFailed:
		return m.OldFailed(ctx)
	case scanjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown ScanJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scanjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case scanjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scanjob.FieldScanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanned(v)
		return nil
	case scanjob.FieldRelevant:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevant(v)
		return nil
	case scanjob.FieldCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreated(v)
		return nil
	case scanjob.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdated(v)
		return nil
	case scanjob.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case scanjob.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case scanjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanJobMutation) AddedFields() []string {
	var fields []string
	if m.addscanned != nil {
		fields = append(fields, scanjob.FieldScanned)
	}
	if m.addrelevant != nil {
		fields = append(fields, scanjob.FieldRelevant)
	}
	if m.addcreated != nil {
		fields = append(fields, scanjob.FieldCreated)
	}
	if m.addupdated != nil {
		fields = append(fields, scanjob.FieldUpdated)
	}
	if m.addskipped != nil {
		fields = append(fields, scanjob.FieldSkipped)
	}
	if m.addfailed != nil {
		fields = append(fields, scanjob.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldScanned:
		return m.AddedScanned()
	case scanjob.FieldRelevant:
		return m.AddedRelevant()
	case scanjob.FieldCreated:
		return m.AddedCreated()
	case scanjob.FieldUpdated:
		return m.AddedUpdated()
	case scanjob.FieldSkipped:
		return m.AddedSkipped()
	case scanjob.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldScanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScanned(v)
		return nil
	case scanjob.FieldRelevant:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevant(v)
		return nil
	case scanjob.FieldCreated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreated(v)
		return nil
	case scanjob.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdated(v)
		return nil
	case scanjob.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	case scanjob.FieldFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanjob.FieldFinishedAt) {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.FieldCleared(scanjob.FieldErrorMessage) {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanJobMutation) ClearField(name string) error {
	switch name {
	case scanjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case scanjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScanJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanJobMutation) ResetField(name string) error {
	switch name {
	case scanjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scanjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case scanjob.FieldStatus:
		m.ResetStatus()
		return nil
	case scanjob.FieldScanned:
		m.ResetScanned()
		return nil
	case scanjob.FieldRelevant:
		m.ResetRelevant()
		return nil
	case scanjob.FieldCreated:
		m.ResetCreated()
		return nil
	case scanjob.FieldUpdated:
		m.ResetUpdated()
		return nil
	case scanjob.FieldSkipped:
		m.ResetSkipped()
		return nil
	case scanjob.FieldFailed:
		m.ResetFailed()
		return nil
	case scanjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScanJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScanJob edge %s", name)
}
