package model

import (
	"cruisevoyager/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldCruiseID = "cruise_id"
	FieldRating   = "rating"
	FieldComment  = "comment"
)

type Review struct {
	ID       string `db:"id"`
	UserID   string `db:"user_id"`
	CruiseID string `db:"cruise_id"`
	Rating   int    `db:"rating"`
	Comment  string `db:"comment"`
	model.Metadata
}

// Rating is the derived review aggregate for one cruise. A cruise without
// reviews has Average 0 and Count 0.
type Rating struct {
	CruiseID string  `db:"cruise_id"`
	Average  float64 `db:"average"`
	Count    int     `db:"count"`
}
