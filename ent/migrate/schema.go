// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "name", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "demo", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "invoice_status", Type: field.TypeString, Default: "draft"},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "amount_paid", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "currency", Type: field.TypeString, Default: "KES", SchemaType: map[string]string{"postgres": "varchar(10)"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "payment_method", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "payment_reference", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(100)"}},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "tenant_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_tenants_invoices",
				Columns:    []*schema.Column{InvoicesColumns[17]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_invoice_match_scan",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[8], InvoicesColumns[9], InvoicesColumns[3]},
			},
			{
				Name:    "idx_invoice_account_tenant",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[17], InvoicesColumns[8]},
			},
			{
				Name:    "idx_invoice_account_due",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[8], InvoicesColumns[12]},
			},
		},
	}
	// PaymentTransactionsColumns holds the columns for the "payment_transactions" table.
	PaymentTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(100)"}},
		{Name: "external_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(100)"}},
		{Name: "invoice_id", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "payment_method", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "transaction_status", Type: field.TypeString, Default: "pending"},
		{Name: "amount", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "currency", Type: field.TypeString, Default: "KES", SchemaType: map[string]string{"postgres": "varchar(10)"}},
		{Name: "payer_phone", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "payer_name", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "jsonb"}},
	}
	// PaymentTransactionsTable holds the schema information for the "payment_transactions" table.
	PaymentTransactionsTable = &schema.Table{
		Name:       "payment_transactions",
		Columns:    PaymentTransactionsColumns,
		PrimaryKey: []*schema.Column{PaymentTransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_txn_account_invoice",
				Unique:  false,
				Columns: []*schema.Column{PaymentTransactionsColumns[1], PaymentTransactionsColumns[9]},
			},
			{
				Name:    "idx_txn_account_external",
				Unique:  false,
				Columns: []*schema.Column{PaymentTransactionsColumns[1], PaymentTransactionsColumns[8]},
			},
			{
				Name:    "idx_txn_account_status",
				Unique:  false,
				Columns: []*schema.Column{PaymentTransactionsColumns[1], PaymentTransactionsColumns[11]},
			},
		},
	}
	// PropertiesColumns holds the columns for the "properties" table.
	PropertiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// PropertiesTable holds the schema information for the "properties" table.
	PropertiesTable = &schema.Table{
		Name:       "properties",
		Columns:    PropertiesColumns,
		PrimaryKey: []*schema.Column{PropertiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_property_account_status",
				Unique:  false,
				Columns: []*schema.Column{PropertiesColumns[1], PropertiesColumns[2]},
			},
		},
	}
	// SmsNotificationsColumns holds the columns for the "sms_notifications" table.
	SmsNotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "tenant_id", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "sms_type", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "message", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "delivery_status", Type: field.TypeString, Default: "sent"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// SmsNotificationsTable holds the schema information for the "sms_notifications" table.
	SmsNotificationsTable = &schema.Table{
		Name:       "sms_notifications",
		Columns:    SmsNotificationsColumns,
		PrimaryKey: []*schema.Column{SmsNotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_sms_account_tenant",
				Unique:  false,
				Columns: []*schema.Column{SmsNotificationsColumns[1], SmsNotificationsColumns[7]},
			},
			{
				Name:    "idx_sms_account_type",
				Unique:  false,
				Columns: []*schema.Column{SmsNotificationsColumns[1], SmsNotificationsColumns[8], SmsNotificationsColumns[3]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "name", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "phone_number", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "email", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "unit_id", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tenants_units_tenants",
				Columns:    []*schema.Column{TenantsColumns[10]},
				RefColumns: []*schema.Column{UnitsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_tenant_account_status",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[1], TenantsColumns[2]},
			},
			{
				Name:    "idx_tenant_account_phone",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[1], TenantsColumns[8]},
			},
		},
	}
	// UnitsColumns holds the columns for the "units" table.
	UnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "unit_number", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "monthly_rent", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "property_id", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(50)"}},
	}
	// UnitsTable holds the schema information for the "units" table.
	UnitsTable = &schema.Table{
		Name:       "units",
		Columns:    UnitsColumns,
		PrimaryKey: []*schema.Column{UnitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "units_properties_units",
				Columns:    []*schema.Column{UnitsColumns[9]},
				RefColumns: []*schema.Column{PropertiesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_unit_account_property",
				Unique:  false,
				Columns: []*schema.Column{UnitsColumns[1], UnitsColumns[9], UnitsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "varchar(50)"}},
		{Name: "account_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "published"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, SchemaType: map[string]string{"postgres": "varchar(255)"}},
		{Name: "password_hash", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "varchar(255)"}},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_user_account_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1], UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		InvoicesTable,
		PaymentTransactionsTable,
		PropertiesTable,
		SmsNotificationsTable,
		TenantsTable,
		UnitsTable,
		UsersTable,
	}
)

func init() {
	InvoicesTable.ForeignKeys[0].RefTable = TenantsTable
	TenantsTable.ForeignKeys[0].RefTable = UnitsTable
	UnitsTable.ForeignKeys[0].RefTable = PropertiesTable
}
