// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// PaymentTransaction is the predicate function for paymenttransaction builders.
type PaymentTransaction func(*sql.Selector)

// Property is the predicate function for property builders.
type Property func(*sql.Selector)

// SmsNotification is the predicate function for smsnotification builders.
type SmsNotification func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// Unit is the predicate function for unit builders.
type Unit func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
