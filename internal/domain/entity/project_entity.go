package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guest is a guest-list entry on a project.
type Guest struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Project is a party plan on the project board: a named event with a due
// date, a guest list and picks from each catalog collection.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"projectId"`
	Name        string             `bson:"name" json:"name"`
	DueDate     string             `bson:"due_date,omitempty" json:"due_date,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	GuestList   []Guest            `bson:"guestList" json:"guestList"`
	Themes      []string           `bson:"themes,omitempty" json:"themes,omitempty"`
	Decorations []string           `bson:"decorations,omitempty" json:"decorations,omitempty"`
	Food        []string           `bson:"food,omitempty" json:"food,omitempty"`
	Drinks      []string           `bson:"drinks,omitempty" json:"drinks,omitempty"`
	Activities  []string           `bson:"activities,omitempty" json:"activities,omitempty"`
}
