// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/application"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetCompanyName sets the "company_name" field.
func (_c *ApplicationCreate) SetCompanyName(v string) *ApplicationCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetJobTitle sets the "job_title" field.
func (_c *ApplicationCreate) SetJobTitle(v string) *ApplicationCreate {
	_c.mutation.SetJobTitle(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *ApplicationCreate) SetLocation(v string) *ApplicationCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableLocation(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetWorkArrangement sets the "work_arrangement" field.
func (_c *ApplicationCreate) SetWorkArrangement(v string) *ApplicationCreate {
	_c.mutation.SetWorkArrangement(v)
	return _c
}

// SetNillableWorkArrangement sets the "work_arrangement" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableWorkArrangement(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetWorkArrangement(*v)
	}
	return _c
}

// SetSalary sets the "salary" field.
func (_c *ApplicationCreate) SetSalary(v string) *ApplicationCreate {
	_c.mutation.SetSalary(v)
	return _c
}

// SetNillableSalary sets the "salary" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableSalary(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetSalary(*v)
	}
	return _c
}

// SetJobType sets the "job_type" field.
func (_c *ApplicationCreate) SetJobType(v string) *ApplicationCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableJobType(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetJobType(*v)
	}
	return _c
}

// SetSeniority sets the "seniority" field.
func (_c *ApplicationCreate) SetSeniority(v string) *ApplicationCreate {
	_c.mutation.SetSeniority(v)
	return _c
}

// SetNillableSeniority sets the "seniority" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableSeniority(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetSeniority(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *ApplicationCreate) SetDepartment(v string) *ApplicationCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableDepartment(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ApplicationCreate) SetDescription(v string) *ApplicationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableDescription(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *ApplicationCreate) SetSkills(v []string) *ApplicationCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetBenefits sets the "benefits" field.
func (_c *ApplicationCreate) SetBenefits(v []string) *ApplicationCreate {
	_c.mutation.SetBenefits(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApplicationCreate) SetStatus(v string) *ApplicationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableStatus(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ApplicationCreate) SetSource(v string) *ApplicationCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ApplicationCreate) SetConfidence(v float32) *ApplicationCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableConfidence(v *float32) *ApplicationCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEmailID sets the "email_id" field.
func (_c *ApplicationCreate) SetEmailID(v string) *ApplicationCreate {
	_c.mutation.SetEmailID(v)
	return _c
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableEmailID(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetEmailID(*v)
	}
	return _c
}

// SetEmailSubject sets the "email_subject" field.
func (_c *ApplicationCreate) SetEmailSubject(v string) *ApplicationCreate {
	_c.mutation.SetEmailSubject(v)
	return _c
}

// SetNillableEmailSubject sets the "email_subject" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableEmailSubject(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetEmailSubject(*v)
	}
	return _c
}

// SetEmailFrom sets the "email_from" field.
func (_c *ApplicationCreate) SetEmailFrom(v string) *ApplicationCreate {
	_c.mutation.SetEmailFrom(v)
	return _c
}

// SetNillableEmailFrom sets the "email_from" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableEmailFrom(v *string) *ApplicationCreate {
	if v != nil {
		_c.SetEmailFrom(*v)
	}
	return _c
}

// SetEmailDate sets the "email_date" field.
func (_c *ApplicationCreate) SetEmailDate(v time.Time) *ApplicationCreate {
	_c.mutation.SetEmailDate(v)
	return _c
}

// SetNillableEmailDate sets the "email_date" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableEmailDate(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetEmailDate(*v)
	}
	return _c
}

// SetAddedAt sets the "added_at" field.
func (_c *ApplicationCreate) SetAddedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetAddedAt(v)
	return _c
}

// SetNillableAddedAt sets the "added_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableAddedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetAddedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApplicationCreate) SetUpdatedAt(v time.Time) *ApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApplicationCreate) SetID(v uuid.UUID) *ApplicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ApplicationCreate) SetNillableID(v *uuid.UUID) *ApplicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ApplicationMutation object of the builder.
func (_c *ApplicationCreate) Mutation() *ApplicationMutation {
	return _c.mutation
}

// Save creates the Application in the database.
func (_c *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApplicationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := application.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		v := application.DefaultAddedAt()
		_c.mutation.SetAddedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := application.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApplicationCreate) check() error {
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Application.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := application.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "Application.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobTitle(); !ok {
		return &ValidationError{Name: "job_title", err: errors.New(`ent: missing required field "Application.job_title"`)}
	}
	if v, ok := _c.mutation.JobTitle(); ok {
		if err := application.JobTitleValidator(v); err != nil {
			return &ValidationError{Name: "job_title", err: fmt.Errorf(`ent: validator failed for field "Application.job_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Application.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := application.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Application.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AddedAt(); !ok {
		return &ValidationError{Name: "added_at", err: errors.New(`ent: missing required field "Application.added_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	return nil
}

func (_c *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(application.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.JobTitle(); ok {
		_spec.SetField(application.FieldJobTitle, field.TypeString, value)
		_node.JobTitle = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(application.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.WorkArrangement(); ok {
		_spec.SetField(application.FieldWorkArrangement, field.TypeString, value)
		_node.WorkArrangement = value
	}
	if value, ok := _c.mutation.Salary(); ok {
		_spec.SetField(application.FieldSalary, field.TypeString, value)
		_node.Salary = value
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(application.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Seniority(); ok {
		_spec.SetField(application.FieldSeniority, field.TypeString, value)
		_node.Seniority = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(application.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(application.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(application.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.Benefits(); ok {
		_spec.SetField(application.FieldBenefits, field.TypeJSON, value)
		_node.Benefits = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(application.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(application.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.EmailID(); ok {
		_spec.SetField(application.FieldEmailID, field.TypeString, value)
		_node.EmailID = &value
	}
	if value, ok := _c.mutation.EmailSubject(); ok {
		_spec.SetField(application.FieldEmailSubject, field.TypeString, value)
		_node.EmailSubject = &value
	}
	if value, ok := _c.mutation.EmailFrom(); ok {
		_spec.SetField(application.FieldEmailFrom, field.TypeString, value)
		_node.EmailFrom = &value
	}
	if value, ok := _c.mutation.EmailDate(); ok {
		_spec.SetField(application.FieldEmailDate, field.TypeTime, value)
		_node.EmailDate = &value
	}
	if value, ok := _c.mutation.AddedAt(); ok {
		_spec.SetField(application.FieldAddedAt, field.TypeTime, value)
		_node.AddedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (_c *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Application, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
