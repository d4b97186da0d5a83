package model

import (
	"cruisevoyager/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldUsername      = "username"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmailVerified = "email_verified"
	FieldStripeID      = "stripe_customer_id"
)

type User struct {
	ID               string `db:"id"`
	Username         string `db:"username"`
	Email            string `db:"email"`
	Password         string `db:"password"`
	FirstName        string `db:"first_name"`
	LastName         string `db:"last_name"`
	EmailVerified    bool   `db:"email_verified"`
	StripeCustomerID string `db:"stripe_customer_id"`
	model.Metadata
}
