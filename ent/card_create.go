// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arvindh/recallo/ent/card"
)

// CardCreate is the builder for creating a Card entity.
type CardCreate struct {
	config
	mutation *CardMutation
	hooks    []Hook
}

// SetCardID sets the "card_id" field.
func (_c *CardCreate) SetCardID(v string) *CardCreate {
	_c.mutation.SetCardID(v)
	return _c
}

// SetDeckID sets the "deck_id" field.
func (_c *CardCreate) SetDeckID(v string) *CardCreate {
	_c.mutation.SetDeckID(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *CardCreate) SetPrompt(v string) *CardCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *CardCreate) SetAnswer(v string) *CardCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetKeypoints sets the "keypoints" field.
func (_c *CardCreate) SetKeypoints(v []string) *CardCreate {
	_c.mutation.SetKeypoints(v)
	return _c
}

// SetAlternativeAnswers sets the "alternative_answers" field.
func (_c *CardCreate) SetAlternativeAnswers(v []string) *CardCreate {
	_c.mutation.SetAlternativeAnswers(v)
	return _c
}

// SetArchived sets the "archived" field.
func (_c *CardCreate) SetArchived(v bool) *CardCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *CardCreate) SetNillableArchived(v *bool) *CardCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *CardCreate) SetDueAt(v time.Time) *CardCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableDueAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetInterval sets the "interval" field.
func (_c *CardCreate) SetInterval(v int) *CardCreate {
	_c.mutation.SetInterval(v)
	return _c
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_c *CardCreate) SetNillableInterval(v *int) *CardCreate {
	if v != nil {
		_c.SetInterval(*v)
	}
	return _c
}

// SetEase sets the "ease" field.
func (_c *CardCreate) SetEase(v float64) *CardCreate {
	_c.mutation.SetEase(v)
	return _c
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_c *CardCreate) SetNillableEase(v *float64) *CardCreate {
	if v != nil {
		_c.SetEase(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *CardCreate) SetStreak(v int) *CardCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *CardCreate) SetNillableStreak(v *int) *CardCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastQuality sets the "last_quality" field.
func (_c *CardCreate) SetLastQuality(v int) *CardCreate {
	_c.mutation.SetLastQuality(v)
	return _c
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_c *CardCreate) SetNillableLastQuality(v *int) *CardCreate {
	if v != nil {
		_c.SetLastQuality(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardCreate) SetCreatedAt(v time.Time) *CardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableCreatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CardCreate) SetUpdatedAt(v time.Time) *CardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableUpdatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CardMutation object of the builder.
func (_c *CardCreate) Mutation() *CardMutation {
	return _c.mutation
}

// Save creates the Card in the database.
func (_c *CardCreate) Save(ctx context.Context) (*Card, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardCreate) SaveX(ctx context.Context) *Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardCreate) defaults() {
	if _, ok := _c.mutation.Archived(); !ok {
		v := card.DefaultArchived
		_c.mutation.SetArchived(v)
	}
	if _, ok := _c.mutation.Interval(); !ok {
		v := card.DefaultInterval
		_c.mutation.SetInterval(v)
	}
	if _, ok := _c.mutation.Ease(); !ok {
		v := card.DefaultEase
		_c.mutation.SetEase(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := card.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := card.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := card.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardCreate) check() error {
	if _, ok := _c.mutation.CardID(); !ok {
		return &ValidationError{Name: "card_id", err: errors.New(`ent: missing required field "Card.card_id"`)}
	}
	if v, ok := _c.mutation.CardID(); ok {
		if err := card.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Card.card_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DeckID(); !ok {
		return &ValidationError{Name: "deck_id", err: errors.New(`ent: missing required field "Card.deck_id"`)}
	}
	if v, ok := _c.mutation.DeckID(); ok {
		if err := card.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "Card.deck_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Card.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := card.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Card.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Card.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := card.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Card.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "Card.archived"`)}
	}
	if _, ok := _c.mutation.Interval(); !ok {
		return &ValidationError{Name: "interval", err: errors.New(`ent: missing required field "Card.interval"`)}
	}
	if _, ok := _c.mutation.Ease(); !ok {
		return &ValidationError{Name: "ease", err: errors.New(`ent: missing required field "Card.ease"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Card.streak"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Card.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Card.updated_at"`)}
	}
	return nil
}

func (_c *CardCreate) sqlSave(ctx context.Context) (*Card, error) {
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

func (_c *CardCreate) createSpec() (*Card, *sqlgraph.CreateSpec) {
	var (
		_node = &Card{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(card.Table, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CardID(); ok {
		_spec.SetField(card.FieldCardID, field.TypeString, value)
		_node.CardID = value
	}
	if value, ok := _c.mutation.DeckID(); ok {
		_spec.SetField(card.FieldDeckID, field.TypeString, value)
		_node.DeckID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(card.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(card.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Keypoints(); ok {
		_spec.SetField(card.FieldKeypoints, field.TypeJSON, value)
		_node.Keypoints = value
	}
	if value, ok := _c.mutation.AlternativeAnswers(); ok {
		_spec.SetField(card.FieldAlternativeAnswers, field.TypeJSON, value)
		_node.AlternativeAnswers = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(card.FieldDueAt, field.TypeTime, value)
		_node.DueAt = &value
	}
	if value, ok := _c.mutation.Interval(); ok {
		_spec.SetField(card.FieldInterval, field.TypeInt, value)
		_node.Interval = value
	}
	if value, ok := _c.mutation.Ease(); ok {
		_spec.SetField(card.FieldEase, field.TypeFloat64, value)
		_node.Ease = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(card.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastQuality(); ok {
		_spec.SetField(card.FieldLastQuality, field.TypeInt, value)
		_node.LastQuality = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CardCreateBulk is the builder for creating many Card entities in bulk.
type CardCreateBulk struct {
	config
	err      error
	builders []*CardCreate
}

// Save creates the Card entities in the database.
func (_c *CardCreateBulk) Save(ctx context.Context) ([]*Card, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Card, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardMutation)
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
func (_c *CardCreateBulk) SaveX(ctx context.Context) []*Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
