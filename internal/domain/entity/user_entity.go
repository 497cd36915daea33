package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the credential record backing signup/signin.
// Email is stored lowered; Password holds the bcrypt hash and is never
// serialized to JSON. AccessToken is issued once at creation and stays
// stable for the life of the account.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"userId"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	AccessToken string             `bson:"accessToken" json:"accessToken"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
