// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fundacionaurora/clinica_backend/internal/repo/bankaccount"
	"github.com/google/uuid"
)

// BankAccountCreate is the builder for creating a BankAccount entity.
type BankAccountCreate struct {
	config
	mutation *BankAccountMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BankAccountCreate) SetCreatedAt(v time.Time) *BankAccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BankAccountCreate) SetNillableCreatedAt(v *time.Time) *BankAccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BankAccountCreate) SetUpdatedAt(v time.Time) *BankAccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BankAccountCreate) SetNillableUpdatedAt(v *time.Time) *BankAccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *BankAccountCreate) SetUserID(v uuid.UUID) *BankAccountCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBankName sets the "bank_name" field.
func (_c *BankAccountCreate) SetBankName(v string) *BankAccountCreate {
	_c.mutation.SetBankName(v)
	return _c
}

// SetAccountHolder sets the "account_holder" field.
func (_c *BankAccountCreate) SetAccountHolder(v string) *BankAccountCreate {
	_c.mutation.SetAccountHolder(v)
	return _c
}

// SetIbanEncrypted sets the "iban_encrypted" field.
func (_c *BankAccountCreate) SetIbanEncrypted(v string) *BankAccountCreate {
	_c.mutation.SetIbanEncrypted(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BankAccountCreate) SetID(v uuid.UUID) *BankAccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BankAccountCreate) SetNillableID(v *uuid.UUID) *BankAccountCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BankAccountMutation object of the builder.
func (_c *BankAccountCreate) Mutation() *BankAccountMutation {
	return _c.mutation
}

// Save creates the BankAccount in the database.
func (_c *BankAccountCreate) Save(ctx context.Context) (*BankAccount, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BankAccountCreate) SaveX(ctx context.Context) *BankAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankAccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankAccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BankAccountCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bankaccount.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bankaccount.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bankaccount.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BankAccountCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BankAccount.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "BankAccount.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "BankAccount.user_id"`)}
	}
	if _, ok := _c.mutation.BankName(); !ok {
		return &ValidationError{Name: "bank_name", err: errors.New(`repo: missing required field "BankAccount.bank_name"`)}
	}
	if v, ok := _c.mutation.BankName(); ok {
		if err := bankaccount.BankNameValidator(v); err != nil {
			return &ValidationError{Name: "bank_name", err: fmt.Errorf(`repo: validator failed for field "BankAccount.bank_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccountHolder(); !ok {
		return &ValidationError{Name: "account_holder", err: errors.New(`repo: missing required field "BankAccount.account_holder"`)}
	}
	if v, ok := _c.mutation.AccountHolder(); ok {
		if err := bankaccount.AccountHolderValidator(v); err != nil {
			return &ValidationError{Name: "account_holder", err: fmt.Errorf(`repo: validator failed for field "BankAccount.account_holder": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IbanEncrypted(); !ok {
		return &ValidationError{Name: "iban_encrypted", err: errors.New(`repo: missing required field "BankAccount.iban_encrypted"`)}
	}
	if v, ok := _c.mutation.IbanEncrypted(); ok {
		if err := bankaccount.IbanEncryptedValidator(v); err != nil {
			return &ValidationError{Name: "iban_encrypted", err: fmt.Errorf(`repo: validator failed for field "BankAccount.iban_encrypted": %w`, err)}
		}
	}
	return nil
}

func (_c *BankAccountCreate) sqlSave(ctx context.Context) (*BankAccount, error) {
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

func (_c *BankAccountCreate) createSpec() (*BankAccount, *sqlgraph.CreateSpec) {
	var (
		_node = &BankAccount{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bankaccount.Table, sqlgraph.NewFieldSpec(bankaccount.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bankaccount.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bankaccount.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(bankaccount.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BankName(); ok {
		_spec.SetField(bankaccount.FieldBankName, field.TypeString, value)
		_node.BankName = value
	}
	if value, ok := _c.mutation.AccountHolder(); ok {
		_spec.SetField(bankaccount.FieldAccountHolder, field.TypeString, value)
		_node.AccountHolder = value
	}
	if value, ok := _c.mutation.IbanEncrypted(); ok {
		_spec.SetField(bankaccount.FieldIbanEncrypted, field.TypeString, value)
		_node.IbanEncrypted = value
	}
	return _node, _spec
}

// BankAccountCreateBulk is the builder for creating many BankAccount entities in bulk.
type BankAccountCreateBulk struct {
	config
	err      error
	builders []*BankAccountCreate
}

// Save creates the BankAccount entities in the database.
func (_c *BankAccountCreateBulk) Save(ctx context.Context) ([]*BankAccount, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BankAccount, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BankAccountMutation)
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
func (_c *BankAccountCreateBulk) SaveX(ctx context.Context) []*BankAccount {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankAccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankAccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
