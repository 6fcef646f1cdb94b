// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/fundacionaurora/clinica_backend/internal/repo/appointment"
	"github.com/fundacionaurora/clinica_backend/internal/repo/auditlog"
	"github.com/fundacionaurora/clinica_backend/internal/repo/bankaccount"
	"github.com/fundacionaurora/clinica_backend/internal/repo/patient"
	"github.com/fundacionaurora/clinica_backend/internal/repo/patientdocument"
	"github.com/fundacionaurora/clinica_backend/internal/repo/payment"
	"github.com/fundacionaurora/clinica_backend/internal/repo/payoutitem"
	"github.com/fundacionaurora/clinica_backend/internal/repo/setting"
	"github.com/fundacionaurora/clinica_backend/internal/repo/therapistpayout"
	"github.com/fundacionaurora/clinica_backend/internal/repo/user"
	"github.com/fundacionaurora/clinica_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogMixinFields1 := auditlogMixin[1].Fields()
	_ = auditlogMixinFields1
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields1[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescEntityType is the schema descriptor for entity_type field.
	auditlogDescEntityType := auditlogFields[2].Descriptor()
	// auditlog.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	auditlog.EntityTypeValidator = auditlogDescEntityType.Validators[0].(func(string) error)
	// auditlogDescEntityID is the schema descriptor for entity_id field.
	auditlogDescEntityID := auditlogFields[3].Descriptor()
	// auditlog.EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	auditlog.EntityIDValidator = auditlogDescEntityID.Validators[0].(func(string) error)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	bankaccountMixin := schema.BankAccount{}.Mixin()
	bankaccountMixinFields0 := bankaccountMixin[0].Fields()
	_ = bankaccountMixinFields0
	bankaccountMixinFields1 := bankaccountMixin[1].Fields()
	_ = bankaccountMixinFields1
	bankaccountFields := schema.BankAccount{}.Fields()
	_ = bankaccountFields
	// bankaccountDescCreatedAt is the schema descriptor for created_at field.
	bankaccountDescCreatedAt := bankaccountMixinFields1[0].Descriptor()
	// bankaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	bankaccount.DefaultCreatedAt = bankaccountDescCreatedAt.Default.(func() time.Time)
	// bankaccountDescUpdatedAt is the schema descriptor for updated_at field.
	bankaccountDescUpdatedAt := bankaccountMixinFields1[1].Descriptor()
	// bankaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bankaccount.DefaultUpdatedAt = bankaccountDescUpdatedAt.Default.(func() time.Time)
	// bankaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bankaccount.UpdateDefaultUpdatedAt = bankaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bankaccountDescBankName is the schema descriptor for bank_name field.
	bankaccountDescBankName := bankaccountFields[1].Descriptor()
	// bankaccount.BankNameValidator is a validator for the "bank_name" field. It is called by the builders before save.
	bankaccount.BankNameValidator = bankaccountDescBankName.Validators[0].(func(string) error)
	// bankaccountDescAccountHolder is the schema descriptor for account_holder field.
	bankaccountDescAccountHolder := bankaccountFields[2].Descriptor()
	// bankaccount.AccountHolderValidator is a validator for the "account_holder" field. It is called by the builders before save.
	bankaccount.AccountHolderValidator = bankaccountDescAccountHolder.Validators[0].(func(string) error)
	// bankaccountDescIbanEncrypted is the schema descriptor for iban_encrypted field.
	bankaccountDescIbanEncrypted := bankaccountFields[3].Descriptor()
	// bankaccount.IbanEncryptedValidator is a validator for the "iban_encrypted" field. It is called by the builders before save.
	bankaccount.IbanEncryptedValidator = bankaccountDescIbanEncrypted.Validators[0].(func(string) error)
	// bankaccountDescID is the schema descriptor for id field.
	bankaccountDescID := bankaccountMixinFields0[0].Descriptor()
	// bankaccount.DefaultID holds the default value on creation for the id field.
	bankaccount.DefaultID = bankaccountDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[0].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[1].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[4].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[5].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescActive is the schema descriptor for active field.
	patientDescActive := patientFields[7].Descriptor()
	// patient.DefaultActive holds the default value on creation for the active field.
	patient.DefaultActive = patientDescActive.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	patientdocumentMixin := schema.PatientDocument{}.Mixin()
	patientdocumentMixinFields0 := patientdocumentMixin[0].Fields()
	_ = patientdocumentMixinFields0
	patientdocumentMixinFields1 := patientdocumentMixin[1].Fields()
	_ = patientdocumentMixinFields1
	patientdocumentFields := schema.PatientDocument{}.Fields()
	_ = patientdocumentFields
	// patientdocumentDescCreatedAt is the schema descriptor for created_at field.
	patientdocumentDescCreatedAt := patientdocumentMixinFields1[0].Descriptor()
	// patientdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientdocument.DefaultCreatedAt = patientdocumentDescCreatedAt.Default.(func() time.Time)
	// patientdocumentDescFileKey is the schema descriptor for file_key field.
	patientdocumentDescFileKey := patientdocumentFields[1].Descriptor()
	// patientdocument.FileKeyValidator is a validator for the "file_key" field. It is called by the builders before save.
	patientdocument.FileKeyValidator = patientdocumentDescFileKey.Validators[0].(func(string) error)
	// patientdocumentDescFileName is the schema descriptor for file_name field.
	patientdocumentDescFileName := patientdocumentFields[2].Descriptor()
	// patientdocument.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	patientdocument.FileNameValidator = patientdocumentDescFileName.Validators[0].(func(string) error)
	// patientdocumentDescContentType is the schema descriptor for content_type field.
	patientdocumentDescContentType := patientdocumentFields[3].Descriptor()
	// patientdocument.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	patientdocument.ContentTypeValidator = patientdocumentDescContentType.Validators[0].(func(string) error)
	// patientdocumentDescID is the schema descriptor for id field.
	patientdocumentDescID := patientdocumentMixinFields0[0].Descriptor()
	// patientdocument.DefaultID holds the default value on creation for the id field.
	patientdocument.DefaultID = patientdocumentDescID.Default.(func() uuid.UUID)
	paymentMixin := schema.Payment{}.Mixin()
	paymentMixinFields0 := paymentMixin[0].Fields()
	_ = paymentMixinFields0
	paymentMixinFields1 := paymentMixin[1].Fields()
	_ = paymentMixinFields1
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentMixinFields1[0].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescUpdatedAt is the schema descriptor for updated_at field.
	paymentDescUpdatedAt := paymentMixinFields1[1].Descriptor()
	// payment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payment.DefaultUpdatedAt = paymentDescUpdatedAt.Default.(func() time.Time)
	// payment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payment.UpdateDefaultUpdatedAt = paymentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymentDescMethod is the schema descriptor for method field.
	paymentDescMethod := paymentFields[5].Descriptor()
	// payment.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	payment.MethodValidator = paymentDescMethod.Validators[0].(func(string) error)
	// paymentDescConcept is the schema descriptor for concept field.
	paymentDescConcept := paymentFields[6].Descriptor()
	// payment.ConceptValidator is a validator for the "concept" field. It is called by the builders before save.
	payment.ConceptValidator = paymentDescConcept.Validators[0].(func(string) error)
	// paymentDescID is the schema descriptor for id field.
	paymentDescID := paymentMixinFields0[0].Descriptor()
	// payment.DefaultID holds the default value on creation for the id field.
	payment.DefaultID = paymentDescID.Default.(func() uuid.UUID)
	payoutitemMixin := schema.PayoutItem{}.Mixin()
	payoutitemMixinFields0 := payoutitemMixin[0].Fields()
	_ = payoutitemMixinFields0
	payoutitemMixinFields1 := payoutitemMixin[1].Fields()
	_ = payoutitemMixinFields1
	payoutitemFields := schema.PayoutItem{}.Fields()
	_ = payoutitemFields
	// payoutitemDescCreatedAt is the schema descriptor for created_at field.
	payoutitemDescCreatedAt := payoutitemMixinFields1[0].Descriptor()
	// payoutitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	payoutitem.DefaultCreatedAt = payoutitemDescCreatedAt.Default.(func() time.Time)
	// payoutitemDescID is the schema descriptor for id field.
	payoutitemDescID := payoutitemMixinFields0[0].Descriptor()
	// payoutitem.DefaultID holds the default value on creation for the id field.
	payoutitem.DefaultID = payoutitemDescID.Default.(func() uuid.UUID)
	settingMixin := schema.Setting{}.Mixin()
	settingMixinFields0 := settingMixin[0].Fields()
	_ = settingMixinFields0
	settingMixinFields1 := settingMixin[1].Fields()
	_ = settingMixinFields1
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescCreatedAt is the schema descriptor for created_at field.
	settingDescCreatedAt := settingMixinFields1[0].Descriptor()
	// setting.DefaultCreatedAt holds the default value on creation for the created_at field.
	setting.DefaultCreatedAt = settingDescCreatedAt.Default.(func() time.Time)
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingMixinFields1[1].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescValue is the schema descriptor for value field.
	settingDescValue := settingFields[1].Descriptor()
	// setting.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	setting.ValueValidator = settingDescValue.Validators[0].(func(string) error)
	// settingDescID is the schema descriptor for id field.
	settingDescID := settingMixinFields0[0].Descriptor()
	// setting.DefaultID holds the default value on creation for the id field.
	setting.DefaultID = settingDescID.Default.(func() uuid.UUID)
	therapistpayoutMixin := schema.TherapistPayout{}.Mixin()
	therapistpayoutMixinFields0 := therapistpayoutMixin[0].Fields()
	_ = therapistpayoutMixinFields0
	therapistpayoutMixinFields1 := therapistpayoutMixin[1].Fields()
	_ = therapistpayoutMixinFields1
	therapistpayoutFields := schema.TherapistPayout{}.Fields()
	_ = therapistpayoutFields
	// therapistpayoutDescCreatedAt is the schema descriptor for created_at field.
	therapistpayoutDescCreatedAt := therapistpayoutMixinFields1[0].Descriptor()
	// therapistpayout.DefaultCreatedAt holds the default value on creation for the created_at field.
	therapistpayout.DefaultCreatedAt = therapistpayoutDescCreatedAt.Default.(func() time.Time)
	// therapistpayoutDescUpdatedAt is the schema descriptor for updated_at field.
	therapistpayoutDescUpdatedAt := therapistpayoutMixinFields1[1].Descriptor()
	// therapistpayout.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	therapistpayout.DefaultUpdatedAt = therapistpayoutDescUpdatedAt.Default.(func() time.Time)
	// therapistpayout.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	therapistpayout.UpdateDefaultUpdatedAt = therapistpayoutDescUpdatedAt.UpdateDefault.(func() time.Time)
	// therapistpayoutDescBankTransferRef is the schema descriptor for bank_transfer_ref field.
	therapistpayoutDescBankTransferRef := therapistpayoutFields[9].Descriptor()
	// therapistpayout.BankTransferRefValidator is a validator for the "bank_transfer_ref" field. It is called by the builders before save.
	therapistpayout.BankTransferRefValidator = therapistpayoutDescBankTransferRef.Validators[0].(func(string) error)
	// therapistpayoutDescID is the schema descriptor for id field.
	therapistpayoutDescID := therapistpayoutMixinFields0[0].Descriptor()
	// therapistpayout.DefaultID holds the default value on creation for the id field.
	therapistpayout.DefaultID = therapistpayoutDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[5].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
