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
	"github.com/arvindh/recallo/ent/card"
	"github.com/arvindh/recallo/ent/predicate"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDeckID sets the "deck_id" field.
func (_u *CardUpdate) SetDeckID(v string) *CardUpdate {
	_u.mutation.SetDeckID(v)
	return _u
}

// SetNillableDeckID sets the "deck_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableDeckID(v *string) *CardUpdate {
	if v != nil {
		_u.SetDeckID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CardUpdate) SetPrompt(v string) *CardUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CardUpdate) SetNillablePrompt(v *string) *CardUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *CardUpdate) SetAnswer(v string) *CardUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *CardUpdate) SetNillableAnswer(v *string) *CardUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetKeypoints sets the "keypoints" field.
func (_u *CardUpdate) SetKeypoints(v []string) *CardUpdate {
	_u.mutation.SetKeypoints(v)
	return _u
}

// AppendKeypoints appends value to the "keypoints" field.
func (_u *CardUpdate) AppendKeypoints(v []string) *CardUpdate {
	_u.mutation.AppendKeypoints(v)
	return _u
}

// ClearKeypoints clears the value of the "keypoints" field.
func (_u *CardUpdate) ClearKeypoints() *CardUpdate {
	_u.mutation.ClearKeypoints()
	return _u
}

// SetAlternativeAnswers sets the "alternative_answers" field.
func (_u *CardUpdate) SetAlternativeAnswers(v []string) *CardUpdate {
	_u.mutation.SetAlternativeAnswers(v)
	return _u
}

// AppendAlternativeAnswers appends value to the "alternative_answers" field.
func (_u *CardUpdate) AppendAlternativeAnswers(v []string) *CardUpdate {
	_u.mutation.AppendAlternativeAnswers(v)
	return _u
}

// ClearAlternativeAnswers clears the value of the "alternative_answers" field.
func (_u *CardUpdate) ClearAlternativeAnswers() *CardUpdate {
	_u.mutation.ClearAlternativeAnswers()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *CardUpdate) SetArchived(v bool) *CardUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *CardUpdate) SetNillableArchived(v *bool) *CardUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *CardUpdate) SetDueAt(v time.Time) *CardUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableDueAt(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *CardUpdate) ClearDueAt() *CardUpdate {
	_u.mutation.ClearDueAt()
	return _u
}

// SetInterval sets the "interval" field.
func (_u *CardUpdate) SetInterval(v int) *CardUpdate {
	_u.mutation.ResetInterval()
	_u.mutation.SetInterval(v)
	return _u
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_u *CardUpdate) SetNillableInterval(v *int) *CardUpdate {
	if v != nil {
		_u.SetInterval(*v)
	}
	return _u
}

// AddInterval adds value to the "interval" field.
func (_u *CardUpdate) AddInterval(v int) *CardUpdate {
	_u.mutation.AddInterval(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *CardUpdate) SetEase(v float64) *CardUpdate {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *CardUpdate) SetNillableEase(v *float64) *CardUpdate {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *CardUpdate) AddEase(v float64) *CardUpdate {
	_u.mutation.AddEase(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *CardUpdate) SetStreak(v int) *CardUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *CardUpdate) SetNillableStreak(v *int) *CardUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *CardUpdate) AddStreak(v int) *CardUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastQuality sets the "last_quality" field.
func (_u *CardUpdate) SetLastQuality(v int) *CardUpdate {
	_u.mutation.ResetLastQuality()
	_u.mutation.SetLastQuality(v)
	return _u
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_u *CardUpdate) SetNillableLastQuality(v *int) *CardUpdate {
	if v != nil {
		_u.SetLastQuality(*v)
	}
	return _u
}

// AddLastQuality adds value to the "last_quality" field.
func (_u *CardUpdate) AddLastQuality(v int) *CardUpdate {
	_u.mutation.AddLastQuality(v)
	return _u
}

// ClearLastQuality clears the value of the "last_quality" field.
func (_u *CardUpdate) ClearLastQuality() *CardUpdate {
	_u.mutation.ClearLastQuality()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdate) SetUpdatedAt(v time.Time) *CardUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableUpdatedAt(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.DeckID(); ok {
		if err := card.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "Card.deck_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := card.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Card.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := card.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Card.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DeckID(); ok {
		_spec.SetField(card.FieldDeckID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(card.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(card.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keypoints(); ok {
		_spec.SetField(card.FieldKeypoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeypoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldKeypoints, value)
		})
	}
	if _u.mutation.KeypointsCleared() {
		_spec.ClearField(card.FieldKeypoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.AlternativeAnswers(); ok {
		_spec.SetField(card.FieldAlternativeAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlternativeAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldAlternativeAnswers, value)
		})
	}
	if _u.mutation.AlternativeAnswersCleared() {
		_spec.ClearField(card.FieldAlternativeAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(card.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(card.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Interval(); ok {
		_spec.SetField(card.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterval(); ok {
		_spec.AddField(card.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(card.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(card.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(card.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(card.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastQuality(); ok {
		_spec.SetField(card.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastQuality(); ok {
		_spec.AddField(card.FieldLastQuality, field.TypeInt, value)
	}
	if _u.mutation.LastQualityCleared() {
		_spec.ClearField(card.FieldLastQuality, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetDeckID sets the "deck_id" field.
func (_u *CardUpdateOne) SetDeckID(v string) *CardUpdateOne {
	_u.mutation.SetDeckID(v)
	return _u
}

// SetNillableDeckID sets the "deck_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableDeckID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetDeckID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *CardUpdateOne) SetPrompt(v string) *CardUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillablePrompt(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *CardUpdateOne) SetAnswer(v string) *CardUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableAnswer(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetKeypoints sets the "keypoints" field.
func (_u *CardUpdateOne) SetKeypoints(v []string) *CardUpdateOne {
	_u.mutation.SetKeypoints(v)
	return _u
}

// AppendKeypoints appends value to the "keypoints" field.
func (_u *CardUpdateOne) AppendKeypoints(v []string) *CardUpdateOne {
	_u.mutation.AppendKeypoints(v)
	return _u
}

// ClearKeypoints clears the value of the "keypoints" field.
func (_u *CardUpdateOne) ClearKeypoints() *CardUpdateOne {
	_u.mutation.ClearKeypoints()
	return _u
}

// SetAlternativeAnswers sets the "alternative_answers" field.
func (_u *CardUpdateOne) SetAlternativeAnswers(v []string) *CardUpdateOne {
	_u.mutation.SetAlternativeAnswers(v)
	return _u
}

// AppendAlternativeAnswers appends value to the "alternative_answers" field.
func (_u *CardUpdateOne) AppendAlternativeAnswers(v []string) *CardUpdateOne {
	_u.mutation.AppendAlternativeAnswers(v)
	return _u
}

// ClearAlternativeAnswers clears the value of the "alternative_answers" field.
func (_u *CardUpdateOne) ClearAlternativeAnswers() *CardUpdateOne {
	_u.mutation.ClearAlternativeAnswers()
	return _u
}

// SetArchived sets the "archived" field.
func (_u *CardUpdateOne) SetArchived(v bool) *CardUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableArchived(v *bool) *CardUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *CardUpdateOne) SetDueAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableDueAt(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *CardUpdateOne) ClearDueAt() *CardUpdateOne {
	_u.mutation.ClearDueAt()
	return _u
}

// SetInterval sets the "interval" field.
func (_u *CardUpdateOne) SetInterval(v int) *CardUpdateOne {
	_u.mutation.ResetInterval()
	_u.mutation.SetInterval(v)
	return _u
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableInterval(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetInterval(*v)
	}
	return _u
}

// AddInterval adds value to the "interval" field.
func (_u *CardUpdateOne) AddInterval(v int) *CardUpdateOne {
	_u.mutation.AddInterval(v)
	return _u
}

// SetEase sets the "ease" field.
func (_u *CardUpdateOne) SetEase(v float64) *CardUpdateOne {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableEase(v *float64) *CardUpdateOne {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *CardUpdateOne) AddEase(v float64) *CardUpdateOne {
	_u.mutation.AddEase(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *CardUpdateOne) SetStreak(v int) *CardUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableStreak(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *CardUpdateOne) AddStreak(v int) *CardUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastQuality sets the "last_quality" field.
func (_u *CardUpdateOne) SetLastQuality(v int) *CardUpdateOne {
	_u.mutation.ResetLastQuality()
	_u.mutation.SetLastQuality(v)
	return _u
}

// SetNillableLastQuality sets the "last_quality" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableLastQuality(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetLastQuality(*v)
	}
	return _u
}

// AddLastQuality adds value to the "last_quality" field.
func (_u *CardUpdateOne) AddLastQuality(v int) *CardUpdateOne {
	_u.mutation.AddLastQuality(v)
	return _u
}

// ClearLastQuality clears the value of the "last_quality" field.
func (_u *CardUpdateOne) ClearLastQuality() *CardUpdateOne {
	_u.mutation.ClearLastQuality()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CardUpdateOne) SetUpdatedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableUpdatedAt(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.DeckID(); ok {
		if err := card.DeckIDValidator(v); err != nil {
			return &ValidationError{Name: "deck_id", err: fmt.Errorf(`ent: validator failed for field "Card.deck_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := card.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Card.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := card.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Card.answer": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
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
	if value, ok := _u.mutation.DeckID(); ok {
		_spec.SetField(card.FieldDeckID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(card.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(card.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keypoints(); ok {
		_spec.SetField(card.FieldKeypoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeypoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldKeypoints, value)
		})
	}
	if _u.mutation.KeypointsCleared() {
		_spec.ClearField(card.FieldKeypoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.AlternativeAnswers(); ok {
		_spec.SetField(card.FieldAlternativeAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlternativeAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldAlternativeAnswers, value)
		})
	}
	if _u.mutation.AlternativeAnswersCleared() {
		_spec.ClearField(card.FieldAlternativeAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(card.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(card.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(card.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Interval(); ok {
		_spec.SetField(card.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterval(); ok {
		_spec.AddField(card.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(card.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(card.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(card.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(card.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastQuality(); ok {
		_spec.SetField(card.FieldLastQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastQuality(); ok {
		_spec.AddField(card.FieldLastQuality, field.TypeInt, value)
	}
	if _u.mutation.LastQualityCleared() {
		_spec.ClearField(card.FieldLastQuality, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(card.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
