// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// BankAccount is the predicate function for bankaccount builders.
type BankAccount func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PatientDocument is the predicate function for patientdocument builders.
type PatientDocument func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// PayoutItem is the predicate function for payoutitem builders.
type PayoutItem func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// TherapistPayout is the predicate function for therapistpayout builders.
type TherapistPayout func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
