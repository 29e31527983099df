// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arvindh/recallo/ent/attempt"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptCreate) SetAttemptID(v string) *AttemptCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetCardID sets the "card_id" field.
func (_c *AttemptCreate) SetCardID(v string) *AttemptCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *AttemptCreate) SetUserAnswer(v string) *AttemptCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *AttemptCreate) SetVerdict(v string) *AttemptCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptCreate) SetScore(v float64) *AttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCosine sets the "cosine" field.
func (_c *AttemptCreate) SetCosine(v float64) *AttemptCreate {
	_c.mutation.SetCosine(v)
	return _c
}

// SetNillableCosine sets the "cosine" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCosine(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetCosine(*v)
	}
	return _c
}

// SetCoverage sets the "coverage" field.
func (_c *AttemptCreate) SetCoverage(v float64) *AttemptCreate {
	_c.mutation.SetCoverage(v)
	return _c
}

// SetNillableCoverage sets the "coverage" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCoverage(v *float64) *AttemptCreate {
	if v != nil {
		_c.SetCoverage(*v)
	}
	return _c
}

// SetMissingKeypoints sets the "missing_keypoints" field.
func (_c *AttemptCreate) SetMissingKeypoints(v []string) *AttemptCreate {
	_c.mutation.SetMissingKeypoints(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *AttemptCreate) SetFeedback(v string) *AttemptCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableFeedback(v *string) *AttemptCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *AttemptCreate) SetPrompt(v string) *AttemptCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *AttemptCreate) SetNillablePrompt(v *string) *AttemptCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_c *AttemptCreate) SetExpectedAnswer(v string) *AttemptCreate {
	_c.mutation.SetExpectedAnswer(v)
	return _c
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableExpectedAnswer(v *string) *AttemptCreate {
	if v != nil {
		_c.SetExpectedAnswer(*v)
	}
	return _c
}

// SetKeypoints sets the "keypoints" field.
func (_c *AttemptCreate) SetKeypoints(v []string) *AttemptCreate {
	_c.mutation.SetKeypoints(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttemptCreate) SetCreatedAt(v time.Time) *AttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableCreatedAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.Cosine(); !ok {
		v := attempt.DefaultCosine
		_c.mutation.SetCosine(v)
	}
	if _, ok := _c.mutation.Coverage(); !ok {
		v := attempt.DefaultCoverage
		_c.mutation.SetCoverage(v)
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		v := attempt.DefaultFeedback
		_c.mutation.SetFeedback(v)
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		v := attempt.DefaultPrompt
		_c.mutation.SetPrompt(v)
	}
	if _, ok := _c.mutation.ExpectedAnswer(); !ok {
		v := attempt.DefaultExpectedAnswer
		_c.mutation.SetExpectedAnswer(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "Attempt.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := attempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "Attempt.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := attempt.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "Attempt.user_answer"`)}
	}
	if v, ok := _c.mutation.UserAnswer(); ok {
		if err := attempt.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "Attempt.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := attempt.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Attempt.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Attempt.score"`)}
	}
	if _, ok := _c.mutation.Cosine(); !ok {
		return &ValidationError{Name: "cosine", err: errors.New(`ent: missing required field "Attempt.cosine"`)}
	}
	if _, ok := _c.mutation.Coverage(); !ok {
		return &ValidationError{Name: "coverage", err: errors.New(`ent: missing required field "Attempt.coverage"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attempt.created_at"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attempt.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(attempt.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(attempt.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(attempt.FieldVerdict, field.TypeString, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Cosine(); ok {
		_spec.SetField(attempt.FieldCosine, field.TypeFloat64, value)
		_node.Cosine = value
	}
	if value, ok := _c.mutation.Coverage(); ok {
		_spec.SetField(attempt.FieldCoverage, field.TypeFloat64, value)
		_node.Coverage = value
	}
	if value, ok := _c.mutation.MissingKeypoints(); ok {
		_spec.SetField(attempt.FieldMissingKeypoints, field.TypeJSON, value)
		_node.MissingKeypoints = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(attempt.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.ExpectedAnswer(); ok {
		_spec.SetField(attempt.FieldExpectedAnswer, field.TypeString, value)
		_node.ExpectedAnswer = value
	}
	if value, ok := _c.mutation.Keypoints(); ok {
		_spec.SetField(attempt.FieldKeypoints, field.TypeJSON, value)
		_node.Keypoints = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
