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
	"github.com/arvindh/recallo/ent/predicate"
	"github.com/arvindh/recallo/ent/sessionblob"
)

// SessionBlobUpdate is the builder for updating SessionBlob entities.
type SessionBlobUpdate struct {
	config
	hooks    []Hook
	mutation *SessionBlobMutation
}

// Where appends a list predicates to the SessionBlobUpdate builder.
func (_u *SessionBlobUpdate) Where(ps ...predicate.SessionBlob) *SessionBlobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *SessionBlobUpdate) SetKey(v string) *SessionBlobUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SessionBlobUpdate) SetNillableKey(v *string) *SessionBlobUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionBlobUpdate) SetVersion(v string) *SessionBlobUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionBlobUpdate) SetNillableVersion(v *string) *SessionBlobUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *SessionBlobUpdate) SetData(v map[string]interface{}) *SessionBlobUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionBlobUpdate) SetUpdatedAt(v time.Time) *SessionBlobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionBlobUpdate) SetNillableUpdatedAt(v *time.Time) *SessionBlobUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionBlobMutation object of the builder.
func (_u *SessionBlobUpdate) Mutation() *SessionBlobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionBlobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionBlobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionBlobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionBlobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionBlobUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := sessionblob.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "SessionBlob.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := sessionblob.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SessionBlob.version": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionBlobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionblob.Table, sessionblob.Columns, sqlgraph.NewFieldSpec(sessionblob.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(sessionblob.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(sessionblob.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(sessionblob.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionblob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionblob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionBlobUpdateOne is the builder for updating a single SessionBlob entity.
type SessionBlobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionBlobMutation
}

// SetKey sets the "key" field.
func (_u *SessionBlobUpdateOne) SetKey(v string) *SessionBlobUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *SessionBlobUpdateOne) SetNillableKey(v *string) *SessionBlobUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SessionBlobUpdateOne) SetVersion(v string) *SessionBlobUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SessionBlobUpdateOne) SetNillableVersion(v *string) *SessionBlobUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *SessionBlobUpdateOne) SetData(v map[string]interface{}) *SessionBlobUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionBlobUpdateOne) SetUpdatedAt(v time.Time) *SessionBlobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SessionBlobUpdateOne) SetNillableUpdatedAt(v *time.Time) *SessionBlobUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SessionBlobMutation object of the builder.
func (_u *SessionBlobUpdateOne) Mutation() *SessionBlobMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionBlobUpdate builder.
func (_u *SessionBlobUpdateOne) Where(ps ...predicate.SessionBlob) *SessionBlobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionBlobUpdateOne) Select(field string, fields ...string) *SessionBlobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionBlob entity.
func (_u *SessionBlobUpdateOne) Save(ctx context.Context) (*SessionBlob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionBlobUpdateOne) SaveX(ctx context.Context) *SessionBlob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionBlobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionBlobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionBlobUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := sessionblob.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "SessionBlob.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := sessionblob.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SessionBlob.version": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionBlobUpdateOne) sqlSave(ctx context.Context) (_node *SessionBlob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionblob.Table, sessionblob.Columns, sqlgraph.NewFieldSpec(sessionblob.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionBlob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionblob.FieldID)
		for _, f := range fields {
			if !sessionblob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionblob.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(sessionblob.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(sessionblob.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(sessionblob.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionblob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionBlob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionblob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
