// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/predicate"
	"github.com/manasvohal/aiInternshipTracker/gen/ent/scanjob"
)

// ScanJobUpdate is the builder for updating ScanJob entities.
type ScanJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScanJobMutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdate) Where(ps ...predicate.ScanJob) *ScanJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanJobUpdate) SetStartedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStartedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdate) SetFinishedAt(v time.Time) *ScanJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFinishedAt(v *time.Time) *ScanJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdate) ClearFinishedAt() *ScanJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdate) SetStatus(v string) *ScanJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableStatus(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScanned sets the "scanned" field.
func (_u *ScanJobUpdate) SetScanned(v int) *ScanJobUpdate {
	_u.mutation.ResetScanned()
	_u.mutation.SetScanned(v)
	return _u
}

// SetNillableScanned sets the "scanned" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableScanned(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetScanned(*v)
	}
	return _u
}

// AddScanned adds value to the "scanned" field.
func (_u *ScanJobUpdate) AddScanned(v int) *ScanJobUpdate {
	_u.mutation.AddScanned(v)
	return _u
}

// SetRelevant sets the "relevant" field.
func (_u *ScanJobUpdate) SetRelevant(v int) *ScanJobUpdate {
	_u.mutation.ResetRelevant()
	_u.mutation.SetRelevant(v)
	return _u
}

// SetNillableRelevant sets the "relevant" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableRelevant(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetRelevant(*v)
	}
	return _u
}

// AddRelevant adds value to the "relevant" field.
func (_u *ScanJobUpdate) AddRelevant(v int) *ScanJobUpdate {
	_u.mutation.AddRelevant(v)
	return _u
}

// SetCreated sets the "created" field.
func (_u *ScanJobUpdate) SetCreated(v int) *ScanJobUpdate {
	_u.mutation.ResetCreated()
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableCreated(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// AddCreated adds value to the "created" field.
func (_u *ScanJobUpdate) AddCreated(v int) *ScanJobUpdate {
	_u.mutation.AddCreated(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *ScanJobUpdate) SetUpdated(v int) *ScanJobUpdate {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableUpdated(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *ScanJobUpdate) AddUpdated(v int) *ScanJobUpdate {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *ScanJobUpdate) SetSkipped(v int) *ScanJobUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableSkipped(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *ScanJobUpdate) AddSkipped(v int) *ScanJobUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ScanJobUpdate) SetFailed(v int) *ScanJobUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableFailed(v *int) *ScanJobUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ScanJobUpdate) AddFailed(v int) *ScanJobUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdate) SetErrorMessage(v string) *ScanJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdate) SetNillableErrorMessage(v *string) *ScanJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdate) ClearErrorMessage() *ScanJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdate) Mutation() *ScanJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScanJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScanJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scanned(); ok {
		_spec.SetField(scanjob.FieldScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScanned(); ok {
		_spec.AddField(scanjob.FieldScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Relevant(); ok {
		_spec.SetField(scanjob.FieldRelevant, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelevant(); ok {
		_spec.AddField(scanjob.FieldRelevant, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(scanjob.FieldCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreated(); ok {
		_spec.AddField(scanjob.FieldCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(scanjob.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(scanjob.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(scanjob.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(scanjob.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(scanjob.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(scanjob.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScanJobUpdateOne is the builder for updating a single ScanJob entity.
type ScanJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScanJobMutation
}

// SetStartedAt sets the "started_at" field.
func (_u *ScanJobUpdateOne) SetStartedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStartedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScanJobUpdateOne) SetFinishedAt(v time.Time) *ScanJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScanJobUpdateOne) ClearFinishedAt() *ScanJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScanJobUpdateOne) SetStatus(v string) *ScanJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableStatus(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScanned sets the "scanned" field.
func (_u *ScanJobUpdateOne) SetScanned(v int) *ScanJobUpdateOne {
	_u.mutation.ResetScanned()
	_u.mutation.SetScanned(v)
	return _u
}

// SetNillableScanned sets the "scanned" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableScanned(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetScanned(*v)
	}
	return _u
}

// AddScanned adds value to the "scanned" field.
func (_u *ScanJobUpdateOne) AddScanned(v int) *ScanJobUpdateOne {
	_u.mutation.AddScanned(v)
	return _u
}

// SetRelevant sets the "relevant" field.
func (_u *ScanJobUpdateOne) SetRelevant(v int) *ScanJobUpdateOne {
	_u.mutation.ResetRelevant()
	_u.mutation.SetRelevant(v)
	return _u
}

// SetNillableRelevant sets the "relevant" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableRelevant(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetRelevant(*v)
	}
	return _u
}

// AddRelevant adds value to the "relevant" field.
func (_u *ScanJobUpdateOne) AddRelevant(v int) *ScanJobUpdateOne {
	_u.mutation.AddRelevant(v)
	return _u
}

// SetCreated sets the "created" field.
func (_u *ScanJobUpdateOne) SetCreated(v int) *ScanJobUpdateOne {
	_u.mutation.ResetCreated()
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableCreated(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// AddCreated adds value to the "created" field.
func (_u *ScanJobUpdateOne) AddCreated(v int) *ScanJobUpdateOne {
	_u.mutation.AddCreated(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *ScanJobUpdateOne) SetUpdated(v int) *ScanJobUpdateOne {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableUpdated(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *ScanJobUpdateOne) AddUpdated(v int) *ScanJobUpdateOne {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *ScanJobUpdateOne) SetSkipped(v int) *ScanJobUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableSkipped(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *ScanJobUpdateOne) AddSkipped(v int) *ScanJobUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ScanJobUpdateOne) SetFailed(v int) *ScanJobUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableFailed(v *int) *ScanJobUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ScanJobUpdateOne) AddFailed(v int) *ScanJobUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ScanJobUpdateOne) SetErrorMessage(v string) *ScanJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ScanJobUpdateOne) SetNillableErrorMessage(v *string) *ScanJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ScanJobUpdateOne) ClearErrorMessage() *ScanJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ScanJobMutation object of the builder.
func (_u *ScanJobUpdateOne) Mutation() *ScanJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScanJobUpdate builder.
func (_u *ScanJobUpdateOne) Where(ps ...predicate.ScanJob) *ScanJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScanJobUpdateOne) Select(field string, fields ...string) *ScanJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScanJob entity.
func (_u *ScanJobUpdateOne) Save(ctx context.Context) (*ScanJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScanJobUpdateOne) SaveX(ctx context.Context) *ScanJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScanJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScanJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScanJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scanjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScanJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScanJobUpdateOne) sqlSave(ctx context.Context) (_node *ScanJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scanjob.Table, scanjob.Columns, sqlgraph.NewFieldSpec(scanjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScanJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scanjob.FieldID)
		for _, f := range fields {
			if !scanjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scanjob.FieldID {
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
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scanjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scanjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scanjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scanjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scanned(); ok {
		_spec.SetField(scanjob.FieldScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScanned(); ok {
		_spec.AddField(scanjob.FieldScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Relevant(); ok {
		_spec.SetField(scanjob.FieldRelevant, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRelevant(); ok {
		_spec.AddField(scanjob.FieldRelevant, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(scanjob.FieldCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreated(); ok {
		_spec.AddField(scanjob.FieldCreated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(scanjob.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(scanjob.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(scanjob.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(scanjob.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(scanjob.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(scanjob.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(scanjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(scanjob.FieldErrorMessage, field.TypeString)
	}
	_node = &ScanJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scanjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
