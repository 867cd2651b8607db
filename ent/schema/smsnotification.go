package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	baseMixin "github.com/rentdesk/rentdesk/ent/schema/mixin"
)

// SmsNotification holds the schema definition for the SmsNotification entity.
// A row is written per dispatch attempt so operators can audit what a tenant
// was told and when.
type SmsNotification struct {
	ent.Schema
}

// Mixin of the SmsNotification.
func (SmsNotification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		baseMixin.BaseMixin{},
	}
}

// Fields of the SmsNotification.
func (SmsNotification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Unique().
			Immutable(),
		field.String("tenant_id").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Optional(),
		field.String("sms_type").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			NotEmpty(),
		field.String("phone_number").
			SchemaType(map[string]string{
				"postgres": "varchar(50)",
			}).
			Optional(),
		field.String("message").
			SchemaType(map[string]string{
				"postgres": "text",
			}).
			NotEmpty(),
		field.String("delivery_status").
			Default("sent"),
		field.String("failure_reason").
			SchemaType(map[string]string{
				"postgres": "text",
			}).
			Optional(),
	}
}

// Indexes of the SmsNotification.
func (SmsNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "tenant_id").
			StorageKey("idx_sms_account_tenant"),
		index.Fields("account_id", "sms_type", "created_at").
			StorageKey("idx_sms_account_type"),
	}
}
