// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fundacionaurora/clinica_backend/internal/repo/payoutitem"
	"github.com/fundacionaurora/clinica_backend/internal/repo/predicate"
	"github.com/fundacionaurora/clinica_backend/internal/repo/therapistpayout"
	"github.com/google/uuid"
)

// TherapistPayoutUpdate is the builder for updating TherapistPayout entities.
type TherapistPayoutUpdate struct {
	config
	hooks    []Hook
	mutation *TherapistPayoutMutation
}

// Where appends a list predicates to the TherapistPayoutUpdate builder.
func (_u *TherapistPayoutUpdate) Where(ps ...predicate.TherapistPayout) *TherapistPayoutUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistPayoutUpdate) SetUpdatedAt(v time.Time) *TherapistPayoutUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *TherapistPayoutUpdate) SetTherapistID(v uuid.UUID) *TherapistPayoutUpdate {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *TherapistPayoutUpdate) SetNillableTherapistID(v *uuid.UUID) *TherapistPayoutUpdate {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TherapistPayoutUpdate) SetStatus(v therapistpayout.Status) *TherapistPayoutUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TherapistPayoutUpdate) SetNillableStatus(v *therapistpayout.Status) *TherapistPayoutUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBankTransferRef sets the "bank_transfer_ref" field.
func (_u *TherapistPayoutUpdate) SetBankTransferRef(v string) *TherapistPayoutUpdate {
	_u.mutation.SetBankTransferRef(v)
	return _u
}

// SetNillableBankTransferRef sets the "bank_transfer_ref" field if the given value is not nil.
func (_u *TherapistPayoutUpdate) SetNillableBankTransferRef(v *string) *TherapistPayoutUpdate {
	if v != nil {
		_u.SetBankTransferRef(*v)
	}
	return _u
}

// ClearBankTransferRef clears the value of the "bank_transfer_ref" field.
func (_u *TherapistPayoutUpdate) ClearBankTransferRef() *TherapistPayoutUpdate {
	_u.mutation.ClearBankTransferRef()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *TherapistPayoutUpdate) SetPaidAt(v time.Time) *TherapistPayoutUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *TherapistPayoutUpdate) SetNillablePaidAt(v *time.Time) *TherapistPayoutUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *TherapistPayoutUpdate) ClearPaidAt() *TherapistPayoutUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TherapistPayoutUpdate) SetNotes(v string) *TherapistPayoutUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TherapistPayoutUpdate) SetNillableNotes(v *string) *TherapistPayoutUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TherapistPayoutUpdate) ClearNotes() *TherapistPayoutUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// AddItemIDs adds the "items" edge to the PayoutItem entity by IDs.
func (_u *TherapistPayoutUpdate) AddItemIDs(ids ...uuid.UUID) *TherapistPayoutUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the PayoutItem entity.
func (_u *TherapistPayoutUpdate) AddItems(v ...*PayoutItem) *TherapistPayoutUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the TherapistPayoutMutation object of the builder.
func (_u *TherapistPayoutUpdate) Mutation() *TherapistPayoutMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the PayoutItem entity.
func (_u *TherapistPayoutUpdate) ClearItems() *TherapistPayoutUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to PayoutItem entities by IDs.
func (_u *TherapistPayoutUpdate) RemoveItemIDs(ids ...uuid.UUID) *TherapistPayoutUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to PayoutItem entities.
func (_u *TherapistPayoutUpdate) RemoveItems(v ...*PayoutItem) *TherapistPayoutUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TherapistPayoutUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistPayoutUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TherapistPayoutUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistPayoutUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistPayoutUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapistpayout.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistPayoutUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := therapistpayout.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapistPayout.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankTransferRef(); ok {
		if err := therapistpayout.BankTransferRefValidator(v); err != nil {
			return &ValidationError{Name: "bank_transfer_ref", err: fmt.Errorf(`repo: validator failed for field "TherapistPayout.bank_transfer_ref": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistPayoutUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapistpayout.Table, therapistpayout.Columns, sqlgraph.NewFieldSpec(therapistpayout.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapistpayout.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(therapistpayout.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(therapistpayout.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BankTransferRef(); ok {
		_spec.SetField(therapistpayout.FieldBankTransferRef, field.TypeString, value)
	}
	if _u.mutation.BankTransferRefCleared() {
		_spec.ClearField(therapistpayout.FieldBankTransferRef, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(therapistpayout.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(therapistpayout.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(therapistpayout.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(therapistpayout.FieldNotes, field.TypeString)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapistpayout.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TherapistPayoutUpdateOne is the builder for updating a single TherapistPayout entity.
type TherapistPayoutUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TherapistPayoutMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TherapistPayoutUpdateOne) SetUpdatedAt(v time.Time) *TherapistPayoutUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTherapistID sets the "therapist_id" field.
func (_u *TherapistPayoutUpdateOne) SetTherapistID(v uuid.UUID) *TherapistPayoutUpdateOne {
	_u.mutation.SetTherapistID(v)
	return _u
}

// SetNillableTherapistID sets the "therapist_id" field if the given value is not nil.
func (_u *TherapistPayoutUpdateOne) SetNillableTherapistID(v *uuid.UUID) *TherapistPayoutUpdateOne {
	if v != nil {
		_u.SetTherapistID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TherapistPayoutUpdateOne) SetStatus(v therapistpayout.Status) *TherapistPayoutUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TherapistPayoutUpdateOne) SetNillableStatus(v *therapistpayout.Status) *TherapistPayoutUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBankTransferRef sets the "bank_transfer_ref" field.
func (_u *TherapistPayoutUpdateOne) SetBankTransferRef(v string) *TherapistPayoutUpdateOne {
	_u.mutation.SetBankTransferRef(v)
	return _u
}

// SetNillableBankTransferRef sets the "bank_transfer_ref" field if the given value is not nil.
func (_u *TherapistPayoutUpdateOne) SetNillableBankTransferRef(v *string) *TherapistPayoutUpdateOne {
	if v != nil {
		_u.SetBankTransferRef(*v)
	}
	return _u
}

// ClearBankTransferRef clears the value of the "bank_transfer_ref" field.
func (_u *TherapistPayoutUpdateOne) ClearBankTransferRef() *TherapistPayoutUpdateOne {
	_u.mutation.ClearBankTransferRef()
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *TherapistPayoutUpdateOne) SetPaidAt(v time.Time) *TherapistPayoutUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *TherapistPayoutUpdateOne) SetNillablePaidAt(v *time.Time) *TherapistPayoutUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *TherapistPayoutUpdateOne) ClearPaidAt() *TherapistPayoutUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TherapistPayoutUpdateOne) SetNotes(v string) *TherapistPayoutUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TherapistPayoutUpdateOne) SetNillableNotes(v *string) *TherapistPayoutUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TherapistPayoutUpdateOne) ClearNotes() *TherapistPayoutUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// AddItemIDs adds the "items" edge to the PayoutItem entity by IDs.
func (_u *TherapistPayoutUpdateOne) AddItemIDs(ids ...uuid.UUID) *TherapistPayoutUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the PayoutItem entity.
func (_u *TherapistPayoutUpdateOne) AddItems(v ...*PayoutItem) *TherapistPayoutUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the TherapistPayoutMutation object of the builder.
func (_u *TherapistPayoutUpdateOne) Mutation() *TherapistPayoutMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the PayoutItem entity.
func (_u *TherapistPayoutUpdateOne) ClearItems() *TherapistPayoutUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to PayoutItem entities by IDs.
func (_u *TherapistPayoutUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *TherapistPayoutUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to PayoutItem entities.
func (_u *TherapistPayoutUpdateOne) RemoveItems(v ...*PayoutItem) *TherapistPayoutUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the TherapistPayoutUpdate builder.
func (_u *TherapistPayoutUpdateOne) Where(ps ...predicate.TherapistPayout) *TherapistPayoutUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TherapistPayoutUpdateOne) Select(field string, fields ...string) *TherapistPayoutUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TherapistPayout entity.
func (_u *TherapistPayoutUpdateOne) Save(ctx context.Context) (*TherapistPayout, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TherapistPayoutUpdateOne) SaveX(ctx context.Context) *TherapistPayout {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TherapistPayoutUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TherapistPayoutUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TherapistPayoutUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := therapistpayout.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TherapistPayoutUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := therapistpayout.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TherapistPayout.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BankTransferRef(); ok {
		if err := therapistpayout.BankTransferRefValidator(v); err != nil {
			return &ValidationError{Name: "bank_transfer_ref", err: fmt.Errorf(`repo: validator failed for field "TherapistPayout.bank_transfer_ref": %w`, err)}
		}
	}
	return nil
}

func (_u *TherapistPayoutUpdateOne) sqlSave(ctx context.Context) (_node *TherapistPayout, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(therapistpayout.Table, therapistpayout.Columns, sqlgraph.NewFieldSpec(therapistpayout.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TherapistPayout.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, therapistpayout.FieldID)
		for _, f := range fields {
			if !therapistpayout.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != therapistpayout.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(therapistpayout.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TherapistID(); ok {
		_spec.SetField(therapistpayout.FieldTherapistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(therapistpayout.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BankTransferRef(); ok {
		_spec.SetField(therapistpayout.FieldBankTransferRef, field.TypeString, value)
	}
	if _u.mutation.BankTransferRefCleared() {
		_spec.ClearField(therapistpayout.FieldBankTransferRef, field.TypeString)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(therapistpayout.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(therapistpayout.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(therapistpayout.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(therapistpayout.FieldNotes, field.TypeString)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TherapistPayout{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{therapistpayout.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
