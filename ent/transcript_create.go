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
	"github.com/jortega/prepdeck/ent/schema"
	"github.com/jortega/prepdeck/ent/transcript"
)

// TranscriptCreate is the builder for creating a Transcript entity.
type TranscriptCreate struct {
	config
	mutation *TranscriptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *TranscriptCreate) SetKey(v string) *TranscriptCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TranscriptCreate) SetSessionID(v string) *TranscriptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *TranscriptCreate) SetTopic(v string) *TranscriptCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *TranscriptCreate) SetDifficulty(v string) *TranscriptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetHistory sets the "history" field.
func (_c *TranscriptCreate) SetHistory(v []schema.TranscriptEntry) *TranscriptCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *TranscriptCreate) SetScore(v int) *TranscriptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *TranscriptCreate) SetMaxScore(v int) *TranscriptCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetSavedAt sets the "saved_at" field.
func (_c *TranscriptCreate) SetSavedAt(v time.Time) *TranscriptCreate {
	_c.mutation.SetSavedAt(v)
	return _c
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_c *TranscriptCreate) SetNillableSavedAt(v *time.Time) *TranscriptCreate {
	if v != nil {
		_c.SetSavedAt(*v)
	}
	return _c
}

// Mutation returns the TranscriptMutation object of the builder.
func (_c *TranscriptCreate) Mutation() *TranscriptMutation {
	return _c.mutation
}

// Save creates the Transcript in the database.
func (_c *TranscriptCreate) Save(ctx context.Context) (*Transcript, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptCreate) SaveX(ctx context.Context) *Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptCreate) defaults() {
	if _, ok := _c.mutation.SavedAt(); !ok {
		v := transcript.DefaultSavedAt()
		_c.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "Transcript.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := transcript.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "Transcript.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Transcript.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := transcript.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Transcript.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Transcript.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := transcript.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Transcript.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Transcript.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := transcript.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Transcript.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.History(); !ok {
		return &ValidationError{Name: "history", err: errors.New(`ent: missing required field "Transcript.history"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Transcript.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "Transcript.max_score"`)}
	}
	if _, ok := _c.mutation.SavedAt(); !ok {
		return &ValidationError{Name: "saved_at", err: errors.New(`ent: missing required field "Transcript.saved_at"`)}
	}
	return nil
}

func (_c *TranscriptCreate) sqlSave(ctx context.Context) (*Transcript, error) {
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

func (_c *TranscriptCreate) createSpec() (*Transcript, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcript.Table, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(transcript.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(transcript.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(transcript.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(transcript.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(transcript.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(transcript.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(transcript.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.SavedAt(); ok {
		_spec.SetField(transcript.FieldSavedAt, field.TypeTime, value)
		_node.SavedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcript.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptCreate) OnConflict(opts ...sql.ConflictOption) *TranscriptUpsertOne {
	_c.conflict = opts
	return &TranscriptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptCreate) OnConflictColumns(columns ...string) *TranscriptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptUpsertOne{
		create: _c,
	}
}

type (
	// TranscriptUpsertOne is the builder for "upsert"-ing
	//  one Transcript node.
	TranscriptUpsertOne struct {
		create *TranscriptCreate
	}

	// TranscriptUpsert is the "OnConflict" setter.
	TranscriptUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *TranscriptUpsert) SetKey(v string) *TranscriptUpsert {
	u.Set(transcript.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateKey() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldKey)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *TranscriptUpsert) SetSessionID(v string) *TranscriptUpsert {
	u.Set(transcript.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateSessionID() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldSessionID)
	return u
}

// SetTopic sets the "topic" field.
func (u *TranscriptUpsert) SetTopic(v string) *TranscriptUpsert {
	u.Set(transcript.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateTopic() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldTopic)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *TranscriptUpsert) SetDifficulty(v string) *TranscriptUpsert {
	u.Set(transcript.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateDifficulty() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldDifficulty)
	return u
}

// SetHistory sets the "history" field.
func (u *TranscriptUpsert) SetHistory(v []schema.TranscriptEntry) *TranscriptUpsert {
	u.Set(transcript.FieldHistory, v)
	return u
}

// UpdateHistory sets the "history" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateHistory() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldHistory)
	return u
}

// SetScore sets the "score" field.
func (u *TranscriptUpsert) SetScore(v int) *TranscriptUpsert {
	u.Set(transcript.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateScore() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *TranscriptUpsert) AddScore(v int) *TranscriptUpsert {
	u.Add(transcript.FieldScore, v)
	return u
}

// SetMaxScore sets the "max_score" field.
func (u *TranscriptUpsert) SetMaxScore(v int) *TranscriptUpsert {
	u.Set(transcript.FieldMaxScore, v)
	return u
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateMaxScore() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldMaxScore)
	return u
}

// AddMaxScore adds v to the "max_score" field.
func (u *TranscriptUpsert) AddMaxScore(v int) *TranscriptUpsert {
	u.Add(transcript.FieldMaxScore, v)
	return u
}

// SetSavedAt sets the "saved_at" field.
func (u *TranscriptUpsert) SetSavedAt(v time.Time) *TranscriptUpsert {
	u.Set(transcript.FieldSavedAt, v)
	return u
}

// UpdateSavedAt sets the "saved_at" field to the value that was provided on create.
func (u *TranscriptUpsert) UpdateSavedAt() *TranscriptUpsert {
	u.SetExcluded(transcript.FieldSavedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TranscriptUpsertOne) UpdateNewValues() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TranscriptUpsertOne) Ignore() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptUpsertOne) DoNothing() *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptCreate.OnConflict
// documentation for more info.
func (u *TranscriptUpsertOne) Update(set func(*TranscriptUpsert)) *TranscriptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *TranscriptUpsertOne) SetKey(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateKey() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateKey()
	})
}

// SetSessionID sets the "session_id" field.
func (u *TranscriptUpsertOne) SetSessionID(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateSessionID() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSessionID()
	})
}

// SetTopic sets the "topic" field.
func (u *TranscriptUpsertOne) SetTopic(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateTopic() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTopic()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *TranscriptUpsertOne) SetDifficulty(v string) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateDifficulty() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateDifficulty()
	})
}

// SetHistory sets the "history" field.
func (u *TranscriptUpsertOne) SetHistory(v []schema.TranscriptEntry) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetHistory(v)
	})
}

// UpdateHistory sets the "history" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateHistory() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateHistory()
	})
}

// SetScore sets the "score" field.
func (u *TranscriptUpsertOne) SetScore(v int) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *TranscriptUpsertOne) AddScore(v int) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateScore() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateScore()
	})
}

// SetMaxScore sets the "max_score" field.
func (u *TranscriptUpsertOne) SetMaxScore(v int) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetMaxScore(v)
	})
}

// AddMaxScore adds v to the "max_score" field.
func (u *TranscriptUpsertOne) AddMaxScore(v int) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.AddMaxScore(v)
	})
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateMaxScore() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateMaxScore()
	})
}

// SetSavedAt sets the "saved_at" field.
func (u *TranscriptUpsertOne) SetSavedAt(v time.Time) *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSavedAt(v)
	})
}

// UpdateSavedAt sets the "saved_at" field to the value that was provided on create.
func (u *TranscriptUpsertOne) UpdateSavedAt() *TranscriptUpsertOne {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSavedAt()
	})
}

// Exec executes the query.
func (u *TranscriptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TranscriptUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TranscriptUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TranscriptCreateBulk is the builder for creating many Transcript entities in bulk.
type TranscriptCreateBulk struct {
	config
	err      error
	builders []*TranscriptCreate
	conflict []sql.ConflictOption
}

// Save creates the Transcript entities in the database.
func (_c *TranscriptCreateBulk) Save(ctx context.Context) ([]*Transcript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *TranscriptCreateBulk) SaveX(ctx context.Context) []*Transcript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcript.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptCreateBulk) OnConflict(opts ...sql.ConflictOption) *TranscriptUpsertBulk {
	_c.conflict = opts
	return &TranscriptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptCreateBulk) OnConflictColumns(columns ...string) *TranscriptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptUpsertBulk{
		create: _c,
	}
}

// TranscriptUpsertBulk is the builder for "upsert"-ing
// a bulk of Transcript nodes.
type TranscriptUpsertBulk struct {
	create *TranscriptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TranscriptUpsertBulk) UpdateNewValues() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcript.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TranscriptUpsertBulk) Ignore() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptUpsertBulk) DoNothing() *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptCreateBulk.OnConflict
// documentation for more info.
func (u *TranscriptUpsertBulk) Update(set func(*TranscriptUpsert)) *TranscriptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *TranscriptUpsertBulk) SetKey(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateKey() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateKey()
	})
}

// SetSessionID sets the "session_id" field.
func (u *TranscriptUpsertBulk) SetSessionID(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateSessionID() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSessionID()
	})
}

// SetTopic sets the "topic" field.
func (u *TranscriptUpsertBulk) SetTopic(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateTopic() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateTopic()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *TranscriptUpsertBulk) SetDifficulty(v string) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateDifficulty() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateDifficulty()
	})
}

// SetHistory sets the "history" field.
func (u *TranscriptUpsertBulk) SetHistory(v []schema.TranscriptEntry) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetHistory(v)
	})
}

// UpdateHistory sets the "history" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateHistory() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateHistory()
	})
}

// SetScore sets the "score" field.
func (u *TranscriptUpsertBulk) SetScore(v int) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *TranscriptUpsertBulk) AddScore(v int) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateScore() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateScore()
	})
}

// SetMaxScore sets the "max_score" field.
func (u *TranscriptUpsertBulk) SetMaxScore(v int) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetMaxScore(v)
	})
}

// AddMaxScore adds v to the "max_score" field.
func (u *TranscriptUpsertBulk) AddMaxScore(v int) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.AddMaxScore(v)
	})
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateMaxScore() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateMaxScore()
	})
}

// SetSavedAt sets the "saved_at" field.
func (u *TranscriptUpsertBulk) SetSavedAt(v time.Time) *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.SetSavedAt(v)
	})
}

// UpdateSavedAt sets the "saved_at" field to the value that was provided on create.
func (u *TranscriptUpsertBulk) UpdateSavedAt() *TranscriptUpsertBulk {
	return u.Update(func(s *TranscriptUpsert) {
		s.UpdateSavedAt()
	})
}

// Exec executes the query.
func (u *TranscriptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TranscriptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
