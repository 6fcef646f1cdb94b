// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fundacionaurora/clinica_backend/internal/repo/payoutitem"
	"github.com/fundacionaurora/clinica_backend/internal/repo/therapistpayout"
	"github.com/google/uuid"
)

// PayoutItemCreate is the builder for creating a PayoutItem entity.
type PayoutItemCreate struct {
	config
	mutation *PayoutItemMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PayoutItemCreate) SetCreatedAt(v time.Time) *PayoutItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PayoutItemCreate) SetNillableCreatedAt(v *time.Time) *PayoutItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPayoutID sets the "payout_id" field.
func (_c *PayoutItemCreate) SetPayoutID(v uuid.UUID) *PayoutItemCreate {
	_c.mutation.SetPayoutID(v)
	return _c
}

// SetPaymentID sets the "payment_id" field.
func (_c *PayoutItemCreate) SetPaymentID(v uuid.UUID) *PayoutItemCreate {
	_c.mutation.SetPaymentID(v)
	return _c
}

// SetPatientType sets the "patient_type" field.
func (_c *PayoutItemCreate) SetPatientType(v payoutitem.PatientType) *PayoutItemCreate {
	_c.mutation.SetPatientType(v)
	return _c
}

// SetPaymentAmount sets the "payment_amount" field.
func (_c *PayoutItemCreate) SetPaymentAmount(v int64) *PayoutItemCreate {
	_c.mutation.SetPaymentAmount(v)
	return _c
}

// SetCommissionRate sets the "commission_rate" field.
func (_c *PayoutItemCreate) SetCommissionRate(v int) *PayoutItemCreate {
	_c.mutation.SetCommissionRate(v)
	return _c
}

// SetCommissionAmount sets the "commission_amount" field.
func (_c *PayoutItemCreate) SetCommissionAmount(v int64) *PayoutItemCreate {
	_c.mutation.SetCommissionAmount(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PayoutItemCreate) SetID(v uuid.UUID) *PayoutItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PayoutItemCreate) SetNillableID(v *uuid.UUID) *PayoutItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPayout sets the "payout" edge to the TherapistPayout entity.
func (_c *PayoutItemCreate) SetPayout(v *TherapistPayout) *PayoutItemCreate {
	return _c.SetPayoutID(v.ID)
}

// Mutation returns the PayoutItemMutation object of the builder.
func (_c *PayoutItemCreate) Mutation() *PayoutItemMutation {
	return _c.mutation
}

// Save creates the PayoutItem in the database.
func (_c *PayoutItemCreate) Save(ctx context.Context) (*PayoutItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PayoutItemCreate) SaveX(ctx context.Context) *PayoutItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PayoutItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := payoutitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := payoutitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PayoutItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PayoutItem.created_at"`)}
	}
	if _, ok := _c.mutation.PayoutID(); !ok {
		return &ValidationError{Name: "payout_id", err: errors.New(`repo: missing required field "PayoutItem.payout_id"`)}
	}
	if _, ok := _c.mutation.PaymentID(); !ok {
		return &ValidationError{Name: "payment_id", err: errors.New(`repo: missing required field "PayoutItem.payment_id"`)}
	}
	if _, ok := _c.mutation.PatientType(); !ok {
		return &ValidationError{Name: "patient_type", err: errors.New(`repo: missing required field "PayoutItem.patient_type"`)}
	}
	if v, ok := _c.mutation.PatientType(); ok {
		if err := payoutitem.PatientTypeValidator(v); err != nil {
			return &ValidationError{Name: "patient_type", err: fmt.Errorf(`repo: validator failed for field "PayoutItem.patient_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaymentAmount(); !ok {
		return &ValidationError{Name: "payment_amount", err: errors.New(`repo: missing required field "PayoutItem.payment_amount"`)}
	}
	if _, ok := _c.mutation.CommissionRate(); !ok {
		return &ValidationError{Name: "commission_rate", err: errors.New(`repo: missing required field "PayoutItem.commission_rate"`)}
	}
	if _, ok := _c.mutation.CommissionAmount(); !ok {
		return &ValidationError{Name: "commission_amount", err: errors.New(`repo: missing required field "PayoutItem.commission_amount"`)}
	}
	if len(_c.mutation.PayoutIDs()) == 0 {
		return &ValidationError{Name: "payout", err: errors.New(`repo: missing required edge "PayoutItem.payout"`)}
	}
	return nil
}

func (_c *PayoutItemCreate) sqlSave(ctx context.Context) (*PayoutItem, error) {
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

func (_c *PayoutItemCreate) createSpec() (*PayoutItem, *sqlgraph.CreateSpec) {
	var (
		_node = &PayoutItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payoutitem.Table, sqlgraph.NewFieldSpec(payoutitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(payoutitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PaymentID(); ok {
		_spec.SetField(payoutitem.FieldPaymentID, field.TypeUUID, value)
		_node.PaymentID = value
	}
	if value, ok := _c.mutation.PatientType(); ok {
		_spec.SetField(payoutitem.FieldPatientType, field.TypeEnum, value)
		_node.PatientType = value
	}
	if value, ok := _c.mutation.PaymentAmount(); ok {
		_spec.SetField(payoutitem.FieldPaymentAmount, field.TypeInt64, value)
		_node.PaymentAmount = value
	}
	if value, ok := _c.mutation.CommissionRate(); ok {
		_spec.SetField(payoutitem.FieldCommissionRate, field.TypeInt, value)
		_node.CommissionRate = value
	}
	if value, ok := _c.mutation.CommissionAmount(); ok {
		_spec.SetField(payoutitem.FieldCommissionAmount, field.TypeInt64, value)
		_node.CommissionAmount = value
	}
	if nodes := _c.mutation.PayoutIDs(); len(nodes) > 0 {
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
		_node.PayoutID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PayoutItemCreateBulk is the builder for creating many PayoutItem entities in bulk.
type PayoutItemCreateBulk struct {
	config
	err      error
	builders []*PayoutItemCreate
}

// Save creates the PayoutItem entities in the database.
func (_c *PayoutItemCreateBulk) Save(ctx context.Context) ([]*PayoutItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PayoutItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayoutItemMutation)
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
func (_c *PayoutItemCreateBulk) SaveX(ctx context.Context) []*PayoutItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayoutItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayoutItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
