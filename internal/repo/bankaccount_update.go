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
	"github.com/fundacionaurora/clinica_backend/internal/repo/bankaccount"
	"github.com/fundacionaurora/clinica_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// BankAccountUpdate is the builder for updating BankAccount entities.
type BankAccountUpdate struct {
	config
	hooks    []Hook
	mutation *BankAccountMutation
}

// Where appends a list predicates to the BankAccountUpdate builder.
func (_u *BankAccountUpdate) Where(ps ...predicate.BankAccount) *BankAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BankAccountUpdate) SetUpdatedAt(v time.Time) *BankAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BankAccountUpdate) SetUserID(v uuid.UUID) *BankAccountUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BankAccountUpdate) SetNillableUserID(v *uuid.UUID) *BankAccountUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *BankAccountUpdate) SetBankName(v string) *BankAccountUpdate {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *BankAccountUpdate) SetNillableBankName(v *string) *BankAccountUpdate {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// SetAccountHolder sets the "account_holder" field.
func (_u *BankAccountUpdate) SetAccountHolder(v string) *BankAccountUpdate {
	_u.mutation.SetAccountHolder(v)
	return _u
}

// SetNillableAccountHolder sets the "account_holder" field if the given value is not nil.
func (_u *BankAccountUpdate) SetNillableAccountHolder(v *string) *BankAccountUpdate {
	if v != nil {
		_u.SetAccountHolder(*v)
	}
	return _u
}

// SetIbanEncrypted sets the "iban_encrypted" field.
func (_u *BankAccountUpdate) SetIbanEncrypted(v string) *BankAccountUpdate {
	_u.mutation.SetIbanEncrypted(v)
	return _u
}

// SetNillableIbanEncrypted sets the "iban_encrypted" field if the given value is not nil.
func (_u *BankAccountUpdate) SetNillableIbanEncrypted(v *string) *BankAccountUpdate {
	if v != nil {
		_u.SetIbanEncrypted(*v)
	}
	return _u
}

// Mutation returns the BankAccountMutation object of the builder.
func (_u *BankAccountUpdate) Mutation() *BankAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BankAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BankAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BankAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bankaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BankAccountUpdate) check() error {
	if v, ok := _u.mutation.BankName(); ok {
		if err := bankaccount.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`repo: validator failed for field "BankAccount.bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountHolder(); ok {
		if err := bankaccount.AccountHolderValidator(v); err != nil {
			return &ValidationError{Name: "account_holder", err: fmt.Errorf(`repo: validator failed for field "BankAccount.account_holder": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IbanEncrypted(); ok {
		if err := bankaccount.IbanEncryptedValidator(v); err != nil {
			return &ValidationError{Name: "iban_encrypted", err: fmt.Errorf(`repo: validator failed for field "BankAccount.iban_encrypted": %w`, err)}
		}
	}
	return nil
}

func (_u *BankAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bankaccount.Table, bankaccount.Columns, sqlgraph.NewFieldSpec(bankaccount.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bankaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bankaccount.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(bankaccount.FieldBankName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountHolder(); ok {
		_spec.SetField(bankaccount.FieldAccountHolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.IbanEncrypted(); ok {
		_spec.SetField(bankaccount.FieldIbanEncrypted, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bankaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BankAccountUpdateOne is the builder for updating a single BankAccount entity.
type BankAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BankAccountMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BankAccountUpdateOne) SetUpdatedAt(v time.Time) *BankAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *BankAccountUpdateOne) SetUserID(v uuid.UUID) *BankAccountUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *BankAccountUpdateOne) SetNillableUserID(v *uuid.UUID) *BankAccountUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetBankName sets the "bank_name" field.
func (_u *BankAccountUpdateOne) SetBankName(v string) *BankAccountUpdateOne {
	_u.mutation.SetBankName(v)
	return _u
}

// SetNillableBankName sets the "bank_name" field if the given value is not nil.
func (_u *BankAccountUpdateOne) SetNillableBankName(v *string) *BankAccountUpdateOne {
	if v != nil {
		_u.SetBankName(*v)
	}
	return _u
}

// SetAccountHolder sets the "account_holder" field.
func (_u *BankAccountUpdateOne) SetAccountHolder(v string) *BankAccountUpdateOne {
	_u.mutation.SetAccountHolder(v)
	return _u
}

// SetNillableAccountHolder sets the "account_holder" field if the given value is not nil.
func (_u *BankAccountUpdateOne) SetNillableAccountHolder(v *string) *BankAccountUpdateOne {
	if v != nil {
		_u.SetAccountHolder(*v)
	}
	return _u
}

// SetIbanEncrypted sets the "iban_encrypted" field.
func (_u *BankAccountUpdateOne) SetIbanEncrypted(v string) *BankAccountUpdateOne {
	_u.mutation.SetIbanEncrypted(v)
	return _u
}

// SetNillableIbanEncrypted sets the "iban_encrypted" field if the given value is not nil.
func (_u *BankAccountUpdateOne) SetNillableIbanEncrypted(v *string) *BankAccountUpdateOne {
	if v != nil {
		_u.SetIbanEncrypted(*v)
	}
	return _u
}

// Mutation returns the BankAccountMutation object of the builder.
func (_u *BankAccountUpdateOne) Mutation() *BankAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the BankAccountUpdate builder.
func (_u *BankAccountUpdateOne) Where(ps ...predicate.BankAccount) *BankAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BankAccountUpdateOne) Select(field string, fields ...string) *BankAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BankAccount entity.
func (_u *BankAccountUpdateOne) Save(ctx context.Context) (*BankAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankAccountUpdateOne) SaveX(ctx context.Context) *BankAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BankAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BankAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bankaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BankAccountUpdateOne) check() error {
	if v, ok := _u.mutation.BankName(); ok {
		if err := bankaccount.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`repo: validator failed for field "BankAccount.bank_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountHolder(); ok {
		if err := bankaccount.AccountHolderValidator(v); err != nil {
			return &ValidationError{Name: "account_holder", err: fmt.Errorf(`repo: validator failed for field "BankAccount.account_holder": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IbanEncrypted(); ok {
		if err := bankaccount.IbanEncryptedValidator(v); err != nil {
			return &ValidationError{Name: "iban_encrypted", err: fmt.Errorf(`repo: validator failed for field "BankAccount.iban_encrypted": %w`, err)}
		}
	}
	return nil
}

func (_u *BankAccountUpdateOne) sqlSave(ctx context.Context) (_node *BankAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bankaccount.Table, bankaccount.Columns, sqlgraph.NewFieldSpec(bankaccount.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BankAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bankaccount.FieldID)
		for _, f := range fields {
			if !bankaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != bankaccount.FieldID {
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
		_spec.SetField(bankaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(bankaccount.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BankName(); ok {
		_spec.SetField(bankaccount.FieldBankName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountHolder(); ok {
		_spec.SetField(bankaccount.FieldAccountHolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.IbanEncrypted(); ok {
		_spec.SetField(bankaccount.FieldIbanEncrypted, field.TypeString, value)
	}
	_node = &BankAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bankaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
