// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/arvindh/recallo/ent/attempt"
	"github.com/arvindh/recallo/ent/predicate"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *AttemptUpdate) SetCardID(v string) *AttemptUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCardID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptUpdate) SetUserAnswer(v string) *AttemptUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUserAnswer(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AttemptUpdate) SetVerdict(v string) *AttemptUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableVerdict(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdate) SetScore(v float64) *AttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableScore(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdate) AddScore(v float64) *AttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCosine sets the "cosine" field.
func (_u *AttemptUpdate) SetCosine(v float64) *AttemptUpdate {
	_u.mutation.ResetCosine()
	_u.mutation.SetCosine(v)
	return _u
}

// SetNillableCosine sets the "cosine" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCosine(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetCosine(*v)
	}
	return _u
}

// AddCosine adds value to the "cosine" field.
func (_u *AttemptUpdate) AddCosine(v float64) *AttemptUpdate {
	_u.mutation.AddCosine(v)
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *AttemptUpdate) SetCoverage(v float64) *AttemptUpdate {
	_u.mutation.ResetCoverage()
	_u.mutation.SetCoverage(v)
	return _u
}

// SetNillableCoverage sets the "coverage" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCoverage(v *float64) *AttemptUpdate {
	if v != nil {
		_u.SetCoverage(*v)
	}
	return _u
}

// AddCoverage adds value to the "coverage" field.
func (_u *AttemptUpdate) AddCoverage(v float64) *AttemptUpdate {
	_u.mutation.AddCoverage(v)
	return _u
}

// SetMissingKeypoints sets the "missing_keypoints" field.
func (_u *AttemptUpdate) SetMissingKeypoints(v []string) *AttemptUpdate {
	_u.mutation.SetMissingKeypoints(v)
	return _u
}

// AppendMissingKeypoints appends value to the "missing_keypoints" field.
func (_u *AttemptUpdate) AppendMissingKeypoints(v []string) *AttemptUpdate {
	_u.mutation.AppendMissingKeypoints(v)
	return _u
}

// ClearMissingKeypoints clears the value of the "missing_keypoints" field.
func (_u *AttemptUpdate) ClearMissingKeypoints() *AttemptUpdate {
	_u.mutation.ClearMissingKeypoints()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AttemptUpdate) SetFeedback(v string) *AttemptUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableFeedback(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *AttemptUpdate) ClearFeedback() *AttemptUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AttemptUpdate) SetPrompt(v string) *AttemptUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillablePrompt(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *AttemptUpdate) ClearPrompt() *AttemptUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *AttemptUpdate) SetExpectedAnswer(v string) *AttemptUpdate {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableExpectedAnswer(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// ClearExpectedAnswer clears the value of the "expected_answer" field.
func (_u *AttemptUpdate) ClearExpectedAnswer() *AttemptUpdate {
	_u.mutation.ClearExpectedAnswer()
	return _u
}

// SetKeypoints sets the "keypoints" field.
func (_u *AttemptUpdate) SetKeypoints(v []string) *AttemptUpdate {
	_u.mutation.SetKeypoints(v)
	return _u
}

// AppendKeypoints appends value to the "keypoints" field.
func (_u *AttemptUpdate) AppendKeypoints(v []string) *AttemptUpdate {
	_u.mutation.AppendKeypoints(v)
	return _u
}

// ClearKeypoints clears the value of the "keypoints" field.
func (_u *AttemptUpdate) ClearKeypoints() *AttemptUpdate {
	_u.mutation.ClearKeypoints()
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := attempt.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := attempt.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := attempt.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Attempt.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(attempt.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attempt.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(attempt.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Cosine(); ok {
		_spec.SetField(attempt.FieldCosine, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCosine(); ok {
		_spec.AddField(attempt.FieldCosine, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(attempt.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverage(); ok {
		_spec.AddField(attempt.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MissingKeypoints(); ok {
		_spec.SetField(attempt.FieldMissingKeypoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingKeypoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldMissingKeypoints, value)
		})
	}
	if _u.mutation.MissingKeypointsCleared() {
		_spec.ClearField(attempt.FieldMissingKeypoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(attempt.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(attempt.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(attempt.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(attempt.FieldExpectedAnswer, field.TypeString, value)
	}
	if _u.mutation.ExpectedAnswerCleared() {
		_spec.ClearField(attempt.FieldExpectedAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Keypoints(); ok {
		_spec.SetField(attempt.FieldKeypoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeypoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldKeypoints, value)
		})
	}
	if _u.mutation.KeypointsCleared() {
		_spec.ClearField(attempt.FieldKeypoints, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetCardID sets the "card_id" field.
func (_u *AttemptUpdateOne) SetCardID(v string) *AttemptUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCardID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptUpdateOne) SetUserAnswer(v string) *AttemptUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUserAnswer(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AttemptUpdateOne) SetVerdict(v string) *AttemptUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableVerdict(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdateOne) SetScore(v float64) *AttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableScore(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdateOne) AddScore(v float64) *AttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCosine sets the "cosine" field.
func (_u *AttemptUpdateOne) SetCosine(v float64) *AttemptUpdateOne {
	_u.mutation.ResetCosine()
	_u.mutation.SetCosine(v)
	return _u
}

// SetNillableCosine sets the "cosine" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCosine(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetCosine(*v)
	}
	return _u
}

// AddCosine adds value to the "cosine" field.
func (_u *AttemptUpdateOne) AddCosine(v float64) *AttemptUpdateOne {
	_u.mutation.AddCosine(v)
	return _u
}

// SetCoverage sets the "coverage" field.
func (_u *AttemptUpdateOne) SetCoverage(v float64) *AttemptUpdateOne {
	_u.mutation.ResetCoverage()
	_u.mutation.SetCoverage(v)
	return _u
}

// SetNillableCoverage sets the "coverage" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCoverage(v *float64) *AttemptUpdateOne {
	if v != nil {
		_u.SetCoverage(*v)
	}
	return _u
}

// AddCoverage adds value to the "coverage" field.
func (_u *AttemptUpdateOne) AddCoverage(v float64) *AttemptUpdateOne {
	_u.mutation.AddCoverage(v)
	return _u
}

// SetMissingKeypoints sets the "missing_keypoints" field.
func (_u *AttemptUpdateOne) SetMissingKeypoints(v []string) *AttemptUpdateOne {
	_u.mutation.SetMissingKeypoints(v)
	return _u
}

// AppendMissingKeypoints appends value to the "missing_keypoints" field.
func (_u *AttemptUpdateOne) AppendMissingKeypoints(v []string) *AttemptUpdateOne {
	_u.mutation.AppendMissingKeypoints(v)
	return _u
}

// ClearMissingKeypoints clears the value of the "missing_keypoints" field.
func (_u *AttemptUpdateOne) ClearMissingKeypoints() *AttemptUpdateOne {
	_u.mutation.ClearMissingKeypoints()
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *AttemptUpdateOne) SetFeedback(v string) *AttemptUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableFeedback(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *AttemptUpdateOne) ClearFeedback() *AttemptUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AttemptUpdateOne) SetPrompt(v string) *AttemptUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillablePrompt(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *AttemptUpdateOne) ClearPrompt() *AttemptUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *AttemptUpdateOne) SetExpectedAnswer(v string) *AttemptUpdateOne {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableExpectedAnswer(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// ClearExpectedAnswer clears the value of the "expected_answer" field.
func (_u *AttemptUpdateOne) ClearExpectedAnswer() *AttemptUpdateOne {
	_u.mutation.ClearExpectedAnswer()
	return _u
}

// SetKeypoints sets the "keypoints" field.
func (_u *AttemptUpdateOne) SetKeypoints(v []string) *AttemptUpdateOne {
	_u.mutation.SetKeypoints(v)
	return _u
}

// AppendKeypoints appends value to the "keypoints" field.
func (_u *AttemptUpdateOne) AppendKeypoints(v []string) *AttemptUpdateOne {
	_u.mutation.AppendKeypoints(v)
	return _u
}

// ClearKeypoints clears the value of the "keypoints" field.
func (_u *AttemptUpdateOne) ClearKeypoints() *AttemptUpdateOne {
	_u.mutation.ClearKeypoints()
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := attempt.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAnswer(); ok {
		if err := attempt.UserAnswerValidator(v); err != nil {
			return &ValidationError{Name: "user_answer", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := attempt.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Attempt.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(attempt.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attempt.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(attempt.FieldVerdict, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Cosine(); ok {
		_spec.SetField(attempt.FieldCosine, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCosine(); ok {
		_spec.AddField(attempt.FieldCosine, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Coverage(); ok {
		_spec.SetField(attempt.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoverage(); ok {
		_spec.AddField(attempt.FieldCoverage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MissingKeypoints(); ok {
		_spec.SetField(attempt.FieldMissingKeypoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMissingKeypoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldMissingKeypoints, value)
		})
	}
	if _u.mutation.MissingKeypointsCleared() {
		_spec.ClearField(attempt.FieldMissingKeypoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(attempt.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(attempt.FieldFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(attempt.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(attempt.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(attempt.FieldExpectedAnswer, field.TypeString, value)
	}
	if _u.mutation.ExpectedAnswerCleared() {
		_spec.ClearField(attempt.FieldExpectedAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Keypoints(); ok {
		_spec.SetField(attempt.FieldKeypoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeypoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attempt.FieldKeypoints, value)
		})
	}
	if _u.mutation.KeypointsCleared() {
		_spec.ClearField(attempt.FieldKeypoints, field.TypeJSON)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
