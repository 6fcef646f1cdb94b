// Code generated by ent, DO NOT EDIT.

package bankaccount

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fundacionaurora/clinica_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldUserID, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldBankName, v))
}

// AccountHolder applies equality check predicate on the "account_holder" field. It's identical to AccountHolderEQ.
func AccountHolder(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldAccountHolder, v))
}

// IbanEncrypted applies equality check predicate on the "iban_encrypted" field. It's identical to IbanEncryptedEQ.
func IbanEncrypted(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldIbanEncrypted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLTE(FieldUserID, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldContainsFold(FieldBankName, v))
}

// AccountHolderEQ applies the EQ predicate on the "account_holder" field.
func AccountHolderEQ(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldAccountHolder, v))
}

// AccountHolderNEQ applies the NEQ predicate on the "account_holder" field.
func AccountHolderNEQ(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNEQ(FieldAccountHolder, v))
}

// AccountHolderIn applies the In predicate on the "account_holder" field.
func AccountHolderIn(vs ...string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldIn(FieldAccountHolder, vs...))
}

// AccountHolderNotIn applies the NotIn predicate on the "account_holder" field.
func AccountHolderNotIn(vs ...string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNotIn(FieldAccountHolder, vs...))
}

// AccountHolderGT applies the GT predicate on the "account_holder" field.
func AccountHolderGT(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGT(FieldAccountHolder, v))
}

// AccountHolderGTE applies the GTE predicate on the "account_holder" field.
func AccountHolderGTE(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGTE(FieldAccountHolder, v))
}

// AccountHolderLT applies the LT predicate on the "account_holder" field.
func AccountHolderLT(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLT(FieldAccountHolder, v))
}

// AccountHolderLTE applies the LTE predicate on the "account_holder" field.
func AccountHolderLTE(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLTE(FieldAccountHolder, v))
}

// AccountHolderContains applies the Contains predicate on the "account_holder" field.
func AccountHolderContains(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldContains(FieldAccountHolder, v))
}

// AccountHolderHasPrefix applies the HasPrefix predicate on the "account_holder" field.
func AccountHolderHasPrefix(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldHasPrefix(FieldAccountHolder, v))
}

// AccountHolderHasSuffix applies the HasSuffix predicate on the "account_holder" field.
func AccountHolderHasSuffix(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldHasSuffix(FieldAccountHolder, v))
}

// AccountHolderEqualFold applies the EqualFold predicate on the "account_holder" field.
func AccountHolderEqualFold(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEqualFold(FieldAccountHolder, v))
}

// AccountHolderContainsFold applies the ContainsFold predicate on the "account_holder" field.
func AccountHolderContainsFold(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldContainsFold(FieldAccountHolder, v))
}

// IbanEncryptedEQ applies the EQ predicate on the "iban_encrypted" field.
func IbanEncryptedEQ(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEQ(FieldIbanEncrypted, v))
}

// IbanEncryptedNEQ applies the NEQ predicate on the "iban_encrypted" field.
func IbanEncryptedNEQ(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNEQ(FieldIbanEncrypted, v))
}

// IbanEncryptedIn applies the In predicate on the "iban_encrypted" field.
func IbanEncryptedIn(vs ...string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldIn(FieldIbanEncrypted, vs...))
}

// IbanEncryptedNotIn applies the NotIn predicate on the "iban_encrypted" field.
func IbanEncryptedNotIn(vs ...string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldNotIn(FieldIbanEncrypted, vs...))
}

// IbanEncryptedGT applies the GT predicate on the "iban_encrypted" field.
func IbanEncryptedGT(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGT(FieldIbanEncrypted, v))
}

// IbanEncryptedGTE applies the GTE predicate on the "iban_encrypted" field.
func IbanEncryptedGTE(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldGTE(FieldIbanEncrypted, v))
}

// IbanEncryptedLT applies the LT predicate on the "iban_encrypted" field.
func IbanEncryptedLT(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLT(FieldIbanEncrypted, v))
}

// IbanEncryptedLTE applies the LTE predicate on the "iban_encrypted" field.
func IbanEncryptedLTE(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldLTE(FieldIbanEncrypted, v))
}

// IbanEncryptedContains applies the Contains predicate on the "iban_encrypted" field.
func IbanEncryptedContains(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldContains(FieldIbanEncrypted, v))
}

// IbanEncryptedHasPrefix applies the HasPrefix predicate on the "iban_encrypted" field.
func IbanEncryptedHasPrefix(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldHasPrefix(FieldIbanEncrypted, v))
}

// IbanEncryptedHasSuffix applies the HasSuffix predicate on the "iban_encrypted" field.
func IbanEncryptedHasSuffix(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldHasSuffix(FieldIbanEncrypted, v))
}

// IbanEncryptedEqualFold applies the EqualFold predicate on the "iban_encrypted" field.
func IbanEncryptedEqualFold(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldEqualFold(FieldIbanEncrypted, v))
}

// IbanEncryptedContainsFold applies the ContainsFold predicate on the "iban_encrypted" field.
func IbanEncryptedContainsFold(v string) predicate.BankAccount {
	return predicate.BankAccount(sql.FieldContainsFold(FieldIbanEncrypted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BankAccount) predicate.BankAccount {
	return predicate.BankAccount(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BankAccount) predicate.BankAccount {
	return predicate.BankAccount(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BankAccount) predicate.BankAccount {
	return predicate.BankAccount(sql.NotPredicates(p))
}
