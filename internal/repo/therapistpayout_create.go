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

// TherapistPayoutCreate is the builder for creating a TherapistPayout entity.
type TherapistPayoutCreate struct {
	config
	mutation *TherapistPayoutMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TherapistPayoutCreate) SetCreatedAt(v time.Time) *TherapistPayoutCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TherapistPayoutCreate) SetNillableCreatedAt(v *time.Time) *TherapistPayoutCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TherapistPayoutCreate) SetUpdatedAt(v time.Time) *TherapistPayoutCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TherapistPayoutCreate) SetNillableUpdatedAt(v *time.Time) *TherapistPayoutCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTherapistID sets the "therapist_id" field.
func (_c *TherapistPayoutCreate) SetTherapistID(v uuid.UUID) *TherapistPayoutCreate {
	_c.mutation.SetTherapistID(v)
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *TherapistPayoutCreate) SetPeriodStart(v time.Time) *TherapistPayoutCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *TherapistPayoutCreate) SetPeriodEnd(v time.Time) *TherapistPayoutCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetPayoutType sets the "payout_type" field.
func (_c *TherapistPayoutCreate) SetPayoutType(v therapistpayout.PayoutType) *TherapistPayoutCreate {
	_c.mutation.SetPayoutType(v)
	return _c
}

// SetGrossAmount sets the "gross_amount" field.
func (_c *TherapistPayoutCreate) SetGrossAmount(v int64) *TherapistPayoutCreate {
	_c.mutation.SetGrossAmount(v)
	return _c
}

// SetCommissionAmount sets the "commission_amount" field.
func (_c *TherapistPayoutCreate) SetCommissionAmount(v int64) *TherapistPayoutCreate {
	_c.mutation.SetCommissionAmount(v)
	return _c
}

// SetDeductionAmount sets the "deduction_amount" field.
func (_c *TherapistPayoutCreate) SetDeductionAmount(v int64) *TherapistPayoutCreate {
	_c.mutation.SetDeductionAmount(v)
	return _c
}

// SetNetAmount sets the "net_amount" field.
func (_c *TherapistPayoutCreate) SetNetAmount(v int64) *TherapistPayoutCreate {
	_c.mutation.SetNetAmount(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TherapistPayoutCreate) SetStatus(v therapistpayout.Status) *TherapistPayoutCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TherapistPayoutCreate) SetNillableStatus(v *therapistpayout.Status) *TherapistPayoutCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBankTransferRef sets the "bank_transfer_ref" field.
func (_c *TherapistPayoutCreate) SetBankTransferRef(v string) *TherapistPayoutCreate {
	_c.mutation.SetBankTransferRef(v)
	return _c
}

// SetNillableBankTransferRef sets the "bank_transfer_ref" field if the given value is not nil.
func (_c *TherapistPayoutCreate) SetNillableBankTransferRef(v *string) *TherapistPayoutCreate {
	if v != nil {
		_c.SetBankTransferRef(*v)
	}
	return _c
}

// SetPaidAt sets the "paid_at" field.
func (_c *TherapistPayoutCreate) SetPaidAt(v time.Time) *TherapistPayoutCreate {
	_c.mutation.SetPaidAt(v)
	return _c
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_c *TherapistPayoutCreate) SetNillablePaidAt(v *time.Time) *TherapistPayoutCreate {
	if v != nil {
		_c.SetPaidAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *TherapistPayoutCreate) SetNotes(v string) *TherapistPayoutCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *TherapistPayoutCreate) SetNillableNotes(v *string) *TherapistPayoutCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *TherapistPayoutCreate) SetCreatedBy(v uuid.UUID) *TherapistPayoutCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TherapistPayoutCreate) SetID(v uuid.UUID) *TherapistPayoutCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TherapistPayoutCreate) SetNillableID(v *uuid.UUID) *TherapistPayoutCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the PayoutItem entity by IDs.
func (_c *TherapistPayoutCreate) AddItemIDs(ids ...uuid.UUID) *TherapistPayoutCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the PayoutItem entity.
func (_c *TherapistPayoutCreate) AddItems(v ...*PayoutItem) *TherapistPayoutCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the TherapistPayoutMutation object of the builder.
func (_c *TherapistPayoutCreate) Mutation() *TherapistPayoutMutation {
	return _c.mutation
}

// Save creates the TherapistPayout in the database.
func (_c *TherapistPayoutCreate) Save(ctx context.Context) (*TherapistPayout, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TherapistPayoutCreate) SaveX(ctx context.Context) *TherapistPayout {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapistPayoutCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapistPayoutCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TherapistPayoutCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := therapistpayout.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := therapistpayout.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := therapistpayout.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := therapistpayout.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TherapistPayoutCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TherapistPayout.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TherapistPayout.updated_at"`)}
	}
	if _, ok := _c.mutation.TherapistID(); !ok {
		return &ValidationError{Name: "therapist_id", err: errors.New(`repo: missing required field "TherapistPayout.therapist_id"`)}
	}
	if _, ok := _c.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`repo: missing required field "TherapistPayout.period_start"`)}
	}
	if _, ok := _c.mutation.PeriodEnd(); !ok {
		return &ValidationError{Name: "period_end", err: errors.New(`repo: missing required field "TherapistPayout.period_end"`)}
	}
	if _, ok := _c.mutation.PayoutType(); !ok {
		return &ValidationError{Name: "payout_type", err: errors.New(`repo: missing required field "TherapistPayout.payout_type"`)}
	}
	if v, ok := _c.mutation.PayoutType(); ok {
		if err := therapistpayout.PayoutTypeValidator(v); err != nil {
			return &ValidationError{Name: "payout_type", err: fmt.Errorf(`repo: validator failed for field "TherapistPayout.payout_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GrossAmount(); !ok {
		return &ValidationError{Name: "gross_amount", err: errors.New(`repo: missing required field "TherapistPayout.gross_amount"`)}
	}
	if _, ok := _c.mutation.CommissionAmount(); !ok {
		return &ValidationError{Name: "commission_amount", err: errors.New(`repo: missing required field "TherapistPayout.commission_amount"`)}
	}
	if _, ok := _c.mutation.DeductionAmount(); !ok {
		return &ValidationError{Name: "deduction_amount", err: errors.New(`repo: missing required field "TherapistPayout.deduction_amount"`)}
	}
	if _, ok := _c.mutation.NetAmount(); !ok {
		return &ValidationError{Name: "net_amount", err: errors.New(`repo: missing required field "TherapistPayout.net_amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "TherapistPayout.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := therapistpayout.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapistPayout.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BankTransferRef(); ok {
		if err := therapistpayout.BankTransferRefValidator(v); err != nil {
			return &ValidationError{Name: "bank_transfer_ref", err: fmt.Errorf(`repo: validator failed for field "TherapistPayout.bank_transfer_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`repo: missing required field "TherapistPayout.created_by"`)}
	}
	return nil
}

func (_c *TherapistPayoutCreate) sqlSave(ctx context.Context) (*TherapistPayout, error) {
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

func (_c *TherapistPayoutCreate) createSpec() (*TherapistPayout, *sqlgraph.CreateSpec) {
	var (
		_node = &TherapistPayout{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(therapistpayout.Table, sqlgraph.NewFieldSpec(therapistpayout.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(therapistpayout.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(therapistpayout.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.TherapistID(); ok {
		_spec.SetField(therapistpayout.FieldTherapistID, field.TypeUUID, value)
		_node.TherapistID = value
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(therapistpayout.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(therapistpayout.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = value
	}
	if value, ok := _c.mutation.PayoutType(); ok {
		_spec.SetField(therapistpayout.FieldPayoutType, field.TypeEnum, value)
		_node.PayoutType = value
	}
	if value, ok := _c.mutation.GrossAmount(); ok {
		_spec.SetField(therapistpayout.FieldGrossAmount, field.TypeInt64, value)
		_node.GrossAmount = value
	}
	if value, ok := _c.mutation.CommissionAmount(); ok {
		_spec.SetField(therapistpayout.FieldCommissionAmount, field.TypeInt64, value)
		_node.CommissionAmount = value
	}
	if value, ok := _c.mutation.DeductionAmount(); ok {
		_spec.SetField(therapistpayout.FieldDeductionAmount, field.TypeInt64, value)
		_node.DeductionAmount = value
	}
	if value, ok := _c.mutation.NetAmount(); ok {
		_spec.SetField(therapistpayout.FieldNetAmount, field.TypeInt64, value)
		_node.NetAmount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(therapistpayout.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BankTransferRef(); ok {
		_spec.SetField(therapistpayout.FieldBankTransferRef, field.TypeString, value)
		_node.BankTransferRef = &value
	}
	if value, ok := _c.mutation.PaidAt(); ok {
		_spec.SetField(therapistpayout.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(therapistpayout.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(therapistpayout.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   therapistpayout.ItemsTable,
			Columns: []string{therapistpayout.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(payoutitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TherapistPayoutCreateBulk is the builder for creating many TherapistPayout entities in bulk.
type TherapistPayoutCreateBulk struct {
	config
	err      error
	builders []*TherapistPayoutCreate
}

// Save creates the TherapistPayout entities in the database.
func (_c *TherapistPayoutCreateBulk) Save(ctx context.Context) ([]*TherapistPayout, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TherapistPayout, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TherapistPayoutMutation)
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
func (_c *TherapistPayoutCreateBulk) SaveX(ctx context.Context) []*TherapistPayout {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TherapistPayoutCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TherapistPayoutCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
