// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"programada", "completada", "cancelada", "no_asistio"}, Default: "programada"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_patients_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_therapist_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[4]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8], AppointmentsColumns[6]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "actor_id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString, Size: 50},
		{Name: "entity_type", Type: field.TypeString, Size: 50},
		{Name: "entity_id", Type: field.TypeString, Size: 64},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[4], AuditLogsColumns[5]},
			},
			{
				Name:    "auditlog_actor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[1]},
			},
		},
	}
	// BankAccountsColumns holds the columns for the "bank_accounts" table.
	BankAccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "bank_name", Type: field.TypeString, Size: 100},
		{Name: "account_holder", Type: field.TypeString, Size: 200},
		{Name: "iban_encrypted", Type: field.TypeString, Size: 500},
	}
	// BankAccountsTable holds the schema information for the "bank_accounts" table.
	BankAccountsTable = &schema.Table{
		Name:       "bank_accounts",
		Columns:    BankAccountsColumns,
		PrimaryKey: []*schema.Column{BankAccountsColumns[0]},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"fundacion", "externo"}, Default: "externo"},
		{Name: "primary_therapist_id", Type: field.TypeUUID, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 254},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_primary_therapist_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[6]},
			},
			{
				Name:    "patient_last_name_first_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[3]},
			},
		},
	}
	// PatientDocumentsColumns holds the columns for the "patient_documents" table.
	PatientDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "file_key", Type: field.TypeString, Size: 512},
		{Name: "file_name", Type: field.TypeString, Size: 255},
		{Name: "content_type", Type: field.TypeString, Size: 100},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "uploaded_by", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// PatientDocumentsTable holds the schema information for the "patient_documents" table.
	PatientDocumentsTable = &schema.Table{
		Name:       "patient_documents",
		Columns:    PatientDocumentsColumns,
		PrimaryKey: []*schema.Column{PatientDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_documents_patients_documents",
				Columns:    []*schema.Column{PatientDocumentsColumns[7]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientdocument_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PatientDocumentsColumns[7], PatientDocumentsColumns[1]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt64},
		{Name: "date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pendiente", "pagado", "parcial", "cancelado"}, Default: "pendiente"},
		{Name: "method", Type: field.TypeString, Nullable: true, Size: 30},
		{Name: "concept", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payments_appointments_payments",
				Columns:    []*schema.Column{PaymentsColumns[8]},
				RefColumns: []*schema.Column{AppointmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "payments_patients_payments",
				Columns:    []*schema.Column{PaymentsColumns[9]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payment_status_date",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[5], PaymentsColumns[4]},
			},
			{
				Name:    "payment_patient_id_date",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[9], PaymentsColumns[4]},
			},
		},
	}
	// PayoutItemsColumns holds the columns for the "payout_items" table.
	PayoutItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "payment_id", Type: field.TypeUUID},
		{Name: "patient_type", Type: field.TypeEnum, Enums: []string{"fundacion", "externo"}},
		{Name: "payment_amount", Type: field.TypeInt64},
		{Name: "commission_rate", Type: field.TypeInt},
		{Name: "commission_amount", Type: field.TypeInt64},
		{Name: "payout_id", Type: field.TypeUUID},
	}
	// PayoutItemsTable holds the schema information for the "payout_items" table.
	PayoutItemsTable = &schema.Table{
		Name:       "payout_items",
		Columns:    PayoutItemsColumns,
		PrimaryKey: []*schema.Column{PayoutItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payout_items_therapist_payouts_items",
				Columns:    []*schema.Column{PayoutItemsColumns[7]},
				RefColumns: []*schema.Column{TherapistPayoutsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payoutitem_payout_id",
				Unique:  false,
				Columns: []*schema.Column{PayoutItemsColumns[7]},
			},
			{
				Name:    "payoutitem_payment_id",
				Unique:  false,
				Columns: []*schema.Column{PayoutItemsColumns[2]},
			},
		},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "key", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "value", Type: field.TypeString, Size: 500},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// TherapistPayoutsColumns holds the columns for the "therapist_payouts" table.
	TherapistPayoutsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "therapist_id", Type: field.TypeUUID},
		{Name: "period_start", Type: field.TypeTime},
		{Name: "period_end", Type: field.TypeTime},
		{Name: "payout_type", Type: field.TypeEnum, Enums: []string{"mensual", "por_pago"}},
		{Name: "gross_amount", Type: field.TypeInt64},
		{Name: "commission_amount", Type: field.TypeInt64},
		{Name: "deduction_amount", Type: field.TypeInt64},
		{Name: "net_amount", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pendiente", "pagado"}, Default: "pendiente"},
		{Name: "bank_transfer_ref", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by", Type: field.TypeUUID},
	}
	// TherapistPayoutsTable holds the schema information for the "therapist_payouts" table.
	TherapistPayoutsTable = &schema.Table{
		Name:       "therapist_payouts",
		Columns:    TherapistPayoutsColumns,
		PrimaryKey: []*schema.Column{TherapistPayoutsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "therapistpayout_therapist_id_status",
				Unique:  false,
				Columns: []*schema.Column{TherapistPayoutsColumns[3], TherapistPayoutsColumns[11]},
			},
			{
				Name:    "therapistpayout_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TherapistPayoutsColumns[11], TherapistPayoutsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 254},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "rrhh", "terapeuta", "recepcion"}},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6], UsersColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AuditLogsTable,
		BankAccountsTable,
		PatientsTable,
		PatientDocumentsTable,
		PaymentsTable,
		PayoutItemsTable,
		SettingsTable,
		TherapistPayoutsTable,
		UsersTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientDocumentsTable.ForeignKeys[0].RefTable = PatientsTable
	PaymentsTable.ForeignKeys[0].RefTable = AppointmentsTable
	PaymentsTable.ForeignKeys[1].RefTable = PatientsTable
	PayoutItemsTable.ForeignKeys[0].RefTable = TherapistPayoutsTable
}
