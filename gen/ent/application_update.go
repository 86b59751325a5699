// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/application"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/predicate"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *ApplicationUpdate) SetCompanyName(v string) *ApplicationUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableCompanyName(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *ApplicationUpdate) SetJobTitle(v string) *ApplicationUpdate {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableJobTitle(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ApplicationUpdate) SetLocation(v string) *ApplicationUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableLocation(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ApplicationUpdate) ClearLocation() *ApplicationUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetWorkArrangement sets the "work_arrangement" field.
func (_u *ApplicationUpdate) SetWorkArrangement(v string) *ApplicationUpdate {
	_u.mutation.SetWorkArrangement(v)
	return _u
}

// SetNillableWorkArrangement sets the "work_arrangement" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableWorkArrangement(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetWorkArrangement(*v)
	}
	return _u
}

// ClearWorkArrangement clears the value of the "work_arrangement" field.
func (_u *ApplicationUpdate) ClearWorkArrangement() *ApplicationUpdate {
	_u.mutation.ClearWorkArrangement()
	return _u
}

// SetSalary sets the "salary" field.
func (_u *ApplicationUpdate) SetSalary(v string) *ApplicationUpdate {
	_u.mutation.SetSalary(v)
	return _u
}

// SetNillableSalary sets the "salary" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSalary(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetSalary(*v)
	}
	return _u
}

// ClearSalary clears the value of the "salary" field.
func (_u *ApplicationUpdate) ClearSalary() *ApplicationUpdate {
	_u.mutation.ClearSalary()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *ApplicationUpdate) SetJobType(v string) *ApplicationUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableJobType(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// ClearJobType clears the value of the "job_type" field.
func (_u *ApplicationUpdate) ClearJobType() *ApplicationUpdate {
	_u.mutation.ClearJobType()
	return _u
}

// SetSeniority sets the "seniority" field.
func (_u *ApplicationUpdate) SetSeniority(v string) *ApplicationUpdate {
	_u.mutation.SetSeniority(v)
	return _u
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSeniority(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetSeniority(*v)
	}
	return _u
}

// ClearSeniority clears the value of the "seniority" field.
func (_u *ApplicationUpdate) ClearSeniority() *ApplicationUpdate {
	_u.mutation.ClearSeniority()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *ApplicationUpdate) SetDepartment(v string) *ApplicationUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableDepartment(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *ApplicationUpdate) ClearDepartment() *ApplicationUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApplicationUpdate) SetDescription(v string) *ApplicationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableDescription(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApplicationUpdate) ClearDescription() *ApplicationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ApplicationUpdate) SetSkills(v []string) *ApplicationUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *ApplicationUpdate) AppendSkills(v []string) *ApplicationUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ApplicationUpdate) ClearSkills() *ApplicationUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetBenefits sets the "benefits" field.
func (_u *ApplicationUpdate) SetBenefits(v []string) *ApplicationUpdate {
	_u.mutation.SetBenefits(v)
	return _u
}

// AppendBenefits appends value to the "benefits" field.
func (_u *ApplicationUpdate) AppendBenefits(v []string) *ApplicationUpdate {
	_u.mutation.AppendBenefits(v)
	return _u
}

// ClearBenefits clears the value of the "benefits" field.
func (_u *ApplicationUpdate) ClearBenefits() *ApplicationUpdate {
	_u.mutation.ClearBenefits()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdate) SetStatus(v string) *ApplicationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableStatus(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ApplicationUpdate) SetSource(v string) *ApplicationUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableSource(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ApplicationUpdate) SetConfidence(v float32) *ApplicationUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableConfidence(v *float32) *ApplicationUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ApplicationUpdate) AddConfidence(v float32) *ApplicationUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ApplicationUpdate) ClearConfidence() *ApplicationUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *ApplicationUpdate) SetEmailID(v string) *ApplicationUpdate {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableEmailID(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// ClearEmailID clears the value of the "email_id" field.
func (_u *ApplicationUpdate) ClearEmailID() *ApplicationUpdate {
	_u.mutation.ClearEmailID()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *ApplicationUpdate) SetEmailSubject(v string) *ApplicationUpdate {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableEmailSubject(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *ApplicationUpdate) ClearEmailSubject() *ApplicationUpdate {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailFrom sets the "email_from" field.
func (_u *ApplicationUpdate) SetEmailFrom(v string) *ApplicationUpdate {
	_u.mutation.SetEmailFrom(v)
	return _u
}

// SetNillableEmailFrom sets the "email_from" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableEmailFrom(v *string) *ApplicationUpdate {
	if v != nil {
		_u.SetEmailFrom(*v)
	}
	return _u
}

// ClearEmailFrom clears the value of the "email_from" field.
func (_u *ApplicationUpdate) ClearEmailFrom() *ApplicationUpdate {
	_u.mutation.ClearEmailFrom()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *ApplicationUpdate) SetEmailDate(v time.Time) *ApplicationUpdate {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *ApplicationUpdate) SetNillableEmailDate(v *time.Time) *ApplicationUpdate {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *ApplicationUpdate) ClearEmailDate() *ApplicationUpdate {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdate) SetUpdatedAt(v time.Time) *ApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdate) Mutation() *ApplicationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdate) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := application.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Application.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobTitle(); ok {
		if err := application.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "Application.job_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := application.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Application.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(application.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(application.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(application.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(application.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.WorkArrangement(); ok {
		_spec.SetField(application.FieldWorkArrangement, field.TypeString, value)
	}
	if _u.mutation.WorkArrangementCleared() {
		_spec.ClearField(application.FieldWorkArrangement, field.TypeString)
	}
	if value, ok := _u.mutation.Salary(); ok {
		_spec.SetField(application.FieldSalary, field.TypeString, value)
	}
	if _u.mutation.SalaryCleared() {
		_spec.ClearField(application.FieldSalary, field.TypeString)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(application.FieldJobType, field.TypeString, value)
	}
	if _u.mutation.JobTypeCleared() {
		_spec.ClearField(application.FieldJobType, field.TypeString)
	}
	if value, ok := _u.mutation.Seniority(); ok {
		_spec.SetField(application.FieldSeniority, field.TypeString, value)
	}
	if _u.mutation.SeniorityCleared() {
		_spec.ClearField(application.FieldSeniority, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(application.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(application.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(application.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(application.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(application.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(application.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Benefits(); ok {
		_spec.SetField(application.FieldBenefits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBenefits(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldBenefits, value)
		})
	}
	if _u.mutation.BenefitsCleared() {
		_spec.ClearField(application.FieldBenefits, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(application.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(application.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(application.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(application.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.EmailID(); ok {
		_spec.SetField(application.FieldEmailID, field.TypeString, value)
	}
	if _u.mutation.EmailIDCleared() {
		_spec.ClearField(application.FieldEmailID, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(application.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(application.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailFrom(); ok {
		_spec.SetField(application.FieldEmailFrom, field.TypeString, value)
	}
	if _u.mutation.EmailFromCleared() {
		_spec.ClearField(application.FieldEmailFrom, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(application.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(application.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetCompanyName sets the "company_name" field.
func (_u *ApplicationUpdateOne) SetCompanyName(v string) *ApplicationUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableCompanyName(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetJobTitle sets the "job_title" field.
func (_u *ApplicationUpdateOne) SetJobTitle(v string) *ApplicationUpdateOne {
	_u.mutation.SetJobTitle(v)
	return _u
}

// SetNillableJobTitle sets the "job_title" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableJobTitle(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetJobTitle(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *ApplicationUpdateOne) SetLocation(v string) *ApplicationUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableLocation(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *ApplicationUpdateOne) ClearLocation() *ApplicationUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetWorkArrangement sets the "work_arrangement" field.
func (_u *ApplicationUpdateOne) SetWorkArrangement(v string) *ApplicationUpdateOne {
	_u.mutation.SetWorkArrangement(v)
	return _u
}

// SetNillableWorkArrangement sets the "work_arrangement" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableWorkArrangement(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetWorkArrangement(*v)
	}
	return _u
}

// ClearWorkArrangement clears the value of the "work_arrangement" field.
func (_u *ApplicationUpdateOne) ClearWorkArrangement() *ApplicationUpdateOne {
	_u.mutation.ClearWorkArrangement()
	return _u
}

// SetSalary sets the "salary" field.
func (_u *ApplicationUpdateOne) SetSalary(v string) *ApplicationUpdateOne {
	_u.mutation.SetSalary(v)
	return _u
}

// SetNillableSalary sets the "salary" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSalary(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSalary(*v)
	}
	return _u
}

// ClearSalary clears the value of the "salary" field.
func (_u *ApplicationUpdateOne) ClearSalary() *ApplicationUpdateOne {
	_u.mutation.ClearSalary()
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *ApplicationUpdateOne) SetJobType(v string) *ApplicationUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableJobType(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// ClearJobType clears the value of the "job_type" field.
func (_u *ApplicationUpdateOne) ClearJobType() *ApplicationUpdateOne {
	_u.mutation.ClearJobType()
	return _u
}

// SetSeniority sets the "seniority" field.
func (_u *ApplicationUpdateOne) SetSeniority(v string) *ApplicationUpdateOne {
	_u.mutation.SetSeniority(v)
	return _u
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSeniority(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSeniority(*v)
	}
	return _u
}

// ClearSeniority clears the value of the "seniority" field.
func (_u *ApplicationUpdateOne) ClearSeniority() *ApplicationUpdateOne {
	_u.mutation.ClearSeniority()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *ApplicationUpdateOne) SetDepartment(v string) *ApplicationUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableDepartment(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *ApplicationUpdateOne) ClearDepartment() *ApplicationUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApplicationUpdateOne) SetDescription(v string) *ApplicationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableDescription(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApplicationUpdateOne) ClearDescription() *ApplicationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ApplicationUpdateOne) SetSkills(v []string) *ApplicationUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *ApplicationUpdateOne) AppendSkills(v []string) *ApplicationUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ApplicationUpdateOne) ClearSkills() *ApplicationUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetBenefits sets the "benefits" field.
func (_u *ApplicationUpdateOne) SetBenefits(v []string) *ApplicationUpdateOne {
	_u.mutation.SetBenefits(v)
	return _u
}

// AppendBenefits appends value to the "benefits" field.
func (_u *ApplicationUpdateOne) AppendBenefits(v []string) *ApplicationUpdateOne {
	_u.mutation.AppendBenefits(v)
	return _u
}

// ClearBenefits clears the value of the "benefits" field.
func (_u *ApplicationUpdateOne) ClearBenefits() *ApplicationUpdateOne {
	_u.mutation.ClearBenefits()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApplicationUpdateOne) SetStatus(v string) *ApplicationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableStatus(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ApplicationUpdateOne) SetSource(v string) *ApplicationUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableSource(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ApplicationUpdateOne) SetConfidence(v float32) *ApplicationUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableConfidence(v *float32) *ApplicationUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ApplicationUpdateOne) AddConfidence(v float32) *ApplicationUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ApplicationUpdateOne) ClearConfidence() *ApplicationUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *ApplicationUpdateOne) SetEmailID(v string) *ApplicationUpdateOne {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableEmailID(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// ClearEmailID clears the value of the "email_id" field.
func (_u *ApplicationUpdateOne) ClearEmailID() *ApplicationUpdateOne {
	_u.mutation.ClearEmailID()
	return _u
}

// SetEmailSubject sets the "email_subject" field.
func (_u *ApplicationUpdateOne) SetEmailSubject(v string) *ApplicationUpdateOne {
	_u.mutation.SetEmailSubject(v)
	return _u
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableEmailSubject(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetEmailSubject(*v)
	}
	return _u
}

// ClearEmailSubject clears the value of the "email_subject" field.
func (_u *ApplicationUpdateOne) ClearEmailSubject() *ApplicationUpdateOne {
	_u.mutation.ClearEmailSubject()
	return _u
}

// SetEmailFrom sets the "email_from" field.
func (_u *ApplicationUpdateOne) SetEmailFrom(v string) *ApplicationUpdateOne {
	_u.mutation.SetEmailFrom(v)
	return _u
}

// SetNillableEmailFrom sets the "email_from" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableEmailFrom(v *string) *ApplicationUpdateOne {
	if v != nil {
		_u.SetEmailFrom(*v)
	}
	return _u
}

// ClearEmailFrom clears the value of the "email_from" field.
func (_u *ApplicationUpdateOne) ClearEmailFrom() *ApplicationUpdateOne {
	_u.mutation.ClearEmailFrom()
	return _u
}

// SetEmailDate sets the "email_date" field.
func (_u *ApplicationUpdateOne) SetEmailDate(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetEmailDate(v)
	return _u
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_u *ApplicationUpdateOne) SetNillableEmailDate(v *time.Time) *ApplicationUpdateOne {
	if v != nil {
		_u.SetEmailDate(*v)
	}
	return _u
}

// ClearEmailDate clears the value of the "email_date" field.
func (_u *ApplicationUpdateOne) ClearEmailDate() *ApplicationUpdateOne {
	_u.mutation.ClearEmailDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicationUpdateOne) SetUpdatedAt(v time.Time) *ApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ApplicationMutation object of the builder.
func (_u *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (_u *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Application entity.
func (_u *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := application.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Application.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobTitle(); ok {
		if err := application.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "Application.job_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := application.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Application.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(application.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobTitle(); ok {
		_spec.SetField(application.FieldJobTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(application.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(application.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.WorkArrangement(); ok {
		_spec.SetField(application.FieldWorkArrangement, field.TypeString, value)
	}
	if _u.mutation.WorkArrangementCleared() {
		_spec.ClearField(application.FieldWorkArrangement, field.TypeString)
	}
	if value, ok := _u.mutation.Salary(); ok {
		_spec.SetField(application.FieldSalary, field.TypeString, value)
	}
	if _u.mutation.SalaryCleared() {
		_spec.ClearField(application.FieldSalary, field.TypeString)
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(application.FieldJobType, field.TypeString, value)
	}
	if _u.mutation.JobTypeCleared() {
		_spec.ClearField(application.FieldJobType, field.TypeString)
	}
	if value, ok := _u.mutation.Seniority(); ok {
		_spec.SetField(application.FieldSeniority, field.TypeString, value)
	}
	if _u.mutation.SeniorityCleared() {
		_spec.ClearField(application.FieldSeniority, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(application.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(application.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(application.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(application.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(application.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(application.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Benefits(); ok {
		_spec.SetField(application.FieldBenefits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBenefits(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, application.FieldBenefits, value)
		})
	}
	if _u.mutation.BenefitsCleared() {
		_spec.ClearField(application.FieldBenefits, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(application.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(application.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(application.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(application.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.EmailID(); ok {
		_spec.SetField(application.FieldEmailID, field.TypeString, value)
	}
	if _u.mutation.EmailIDCleared() {
		_spec.ClearField(application.FieldEmailID, field.TypeString)
	}
	if value, ok := _u.mutation.EmailSubject(); ok {
		_spec.SetField(application.FieldEmailSubject, field.TypeString, value)
	}
	if _u.mutation.EmailSubjectCleared() {
		_spec.ClearField(application.FieldEmailSubject, field.TypeString)
	}
	if value, ok := _u.mutation.EmailFrom(); ok {
		_spec.SetField(application.FieldEmailFrom, field.TypeString, value)
	}
	if _u.mutation.EmailFromCleared() {
		_spec.ClearField(application.FieldEmailFrom, field.TypeString)
	}
	if value, ok := _u.mutation.EmailDate(); ok {
		_spec.SetField(application.FieldEmailDate, field.TypeTime, value)
	}
	if _u.mutation.EmailDateCleared() {
		_spec.ClearField(application.FieldEmailDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Application{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
