// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fundacionaurora/clinica_backend/internal/repo/payoutitem"
	"github.com/fundacionaurora/clinica_backend/internal/repo/predicate"
	"github.com/fundacionaurora/clinica_backend/internal/repo/therapistpayout"
	"github.com/google/uuid"
)

// PayoutItemUpdate is the builder for updating PayoutItem entities.
type PayoutItemUpdate struct {
	config
	hooks    []Hook
	mutation *PayoutItemMutation
}

// Where appends a list predicates to the PayoutItemUpdate builder.
func (_u *PayoutItemUpdate) Where(ps ...predicate.PayoutItem) *PayoutItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayoutID sets the "payout_id" field.
func (_u *PayoutItemUpdate) SetPayoutID(v uuid.UUID) *PayoutItemUpdate {
	_u.mutation.SetPayoutID(v)
	return _u
}

// SetNillablePayoutID sets the "payout_id" field if the given value is not nil.
func (_u *PayoutItemUpdate) SetNillablePayoutID(v *uuid.UUID) *PayoutItemUpdate {
	if v != nil {
		_u.SetPayoutID(*v)
	}
	return _u
}

// SetPayout sets the "payout" edge to the TherapistPayout entity.
func (_u *PayoutItemUpdate) SetPayout(v *TherapistPayout) *PayoutItemUpdate {
	return _u.SetPayoutID(v.ID)
}

// Mutation returns the PayoutItemMutation object of the builder.
func (_u *PayoutItemUpdate) Mutation() *PayoutItemMutation {
	return _u.mutation
}

// ClearPayout clears the "payout" edge to the TherapistPayout entity.
func (_u *PayoutItemUpdate) ClearPayout() *PayoutItemUpdate {
	_u.mutation.ClearPayout()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PayoutItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayoutItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PayoutItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayoutItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayoutItemUpdate) check() error {
	if _u.mutation.PayoutCleared() && len(_u.mutation.PayoutIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PayoutItem.payout"`)
	}
	return nil
}

func (_u *PayoutItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payoutitem.Table, payoutitem.Columns, sqlgraph.NewFieldSpec(payoutitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PayoutCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payoutitem.PayoutTable,
			Columns: []string{payoutitem.PayoutColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapistpayout.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PayoutIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payoutitem.PayoutTable,
			Columns: []string{payoutitem.PayoutColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapistpayout.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payoutitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PayoutItemUpdateOne is the builder for updating a single PayoutItem entity.
type PayoutItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PayoutItemMutation
}

// SetPayoutID sets the "payout_id" field.
func (_u *PayoutItemUpdateOne) SetPayoutID(v uuid.UUID) *PayoutItemUpdateOne {
	_u.mutation.SetPayoutID(v)
	return _u
}

// SetNillablePayoutID sets the "payout_id" field if the given value is not nil.
func (_u *PayoutItemUpdateOne) SetNillablePayoutID(v *uuid.UUID) *PayoutItemUpdateOne {
	if v != nil {
		_u.SetPayoutID(*v)
	}
	return _u
}

// SetPayout sets the "payout" edge to the TherapistPayout entity.
func (_u *PayoutItemUpdateOne) SetPayout(v *TherapistPayout) *PayoutItemUpdateOne {
	return _u.SetPayoutID(v.ID)
}

// Mutation returns the PayoutItemMutation object of the builder.
func (_u *PayoutItemUpdateOne) Mutation() *PayoutItemMutation {
	return _u.mutation
}

// ClearPayout clears the "payout" edge to the TherapistPayout entity.
func (_u *PayoutItemUpdateOne) ClearPayout() *PayoutItemUpdateOne {
	_u.mutation.ClearPayout()
	return _u
}

// Where appends a list predicates to the PayoutItemUpdate builder.
func (_u *PayoutItemUpdateOne) Where(ps ...predicate.PayoutItem) *PayoutItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PayoutItemUpdateOne) Select(field string, fields ...string) *PayoutItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PayoutItem entity.
func (_u *PayoutItemUpdateOne) Save(ctx context.Context) (*PayoutItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PayoutItemUpdateOne) SaveX(ctx context.Context) *PayoutItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PayoutItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PayoutItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PayoutItemUpdateOne) check() error {
	if _u.mutation.PayoutCleared() && len(_u.mutation.PayoutIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PayoutItem.payout"`)
	}
	return nil
}

func (_u *PayoutItemUpdateOne) sqlSave(ctx context.Context) (_node *PayoutItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(payoutitem.Table, payoutitem.Columns, sqlgraph.NewFieldSpec(payoutitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PayoutItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, payoutitem.FieldID)
		for _, f := range fields {
			if !payoutitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != payoutitem.FieldID {
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
	if _u.mutation.PayoutCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payoutitem.PayoutTable,
			Columns: []string{payoutitem.PayoutColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapistpayout.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PayoutIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   payoutitem.PayoutTable,
			Columns: []string{payoutitem.PayoutColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(therapistpayout.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PayoutItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{payoutitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
