package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/rentdesk/rentdesk/ent/schema/mixin"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// PaymentTransaction holds the schema definition for the PaymentTransaction
// entity. One row per observed payment event; the unique idempotency key is
// what makes webhook redelivery a no-op.
type PaymentTransaction struct {
	ent.Schema
}

// Mixin of the PaymentTransaction.
func (PaymentTransaction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the PaymentTransaction.
func (PaymentTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("idempotency_key").
			SchemaType(map[string]string{
				"postgres": "varchar(100)",
			}).
			NotEmpty().
			Unique().
			Immutable(),
		field.String("external_id").
			SchemaType(map[string]string{
				"postgres": "varchar(100)",
			}).
			NotEmpty().
			Immutable(),
		field.String("invoice_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Optional().
			Nillable(),
		field.String("payment_method").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty(),
		field.String("transaction_status").
			Default("pending"),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				"postgres": "numeric(20,8)",
			}).
			Default(decimal.Zero),
		field.String("currency").
			SchemaType(map[string]string{
				"postgres": "varchar(10)",
			}).
			Default("KES"),
		field.String("payer_phone").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Optional(),
		field.String("payer_name").
			SchemaType(map[string]string{
				"postgres": "varchar(255)",
			}).
			Optional(),
		field.Time("paid_at").
			Optional().
			Nillable(),
		field.Other("metadata", types.Metadata{}).
			SchemaType(map[string]string{
				"postgres": "jsonb",
			}).
			Optional(),
	}
}

// Indexes of the PaymentTransaction.
func (PaymentTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "invoice_id").
			StorageKey("idx_txn_account_invoice"),
		index.Fields("account_id", "external_id").
			StorageKey("idx_txn_account_external"),
		index.Fields("account_id", "transaction_status").
			StorageKey("idx_txn_account_status"),
	}
}
