package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	MinMessageLength = 5
	MaxMessageLength = 140
	DefaultUserName  = "Anonymous"
	ThoughtsPerPage  = 5
)

type Thought struct {
	ID        bson.ObjectID `json:"_id"       bson:"_id,omitempty"`
	Message   string        `json:"message"   bson:"message"`
	Hearts    int           `json:"hearts"    bson:"hearts"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UserName  string        `json:"userName"  bson:"userName"`
}
