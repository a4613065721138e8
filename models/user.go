// models/user.go
package models

import "time"

// User is the per-account Mongo document. The weekly routine, chat history
// and money book all live on it; mutations replace the affected field
// wholesale.
type User struct {
	ID              string       `bson:"id" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Email           string       `bson:"email" json:"email"`
	PasswordHash    string       `bson:"passwordHash" json:"-"`
	TokenHash       string       `bson:"tokenHash" json:"-"`
	Photo           string       `bson:"photo" json:"photo"`
	FirstTimeLogin  bool         `bson:"firstTimeLogin" json:"firstTimeLogin"`
	IsAdmin         bool         `bson:"isAdmin" json:"isAdmin"`
	IsEmailVerified bool         `bson:"isEmailVerified" json:"isEmailVerified"`
	PaymentType     string       `bson:"paymentType" json:"paymentType"`
	ExpiredAt       time.Time    `bson:"expiredAt" json:"expiredAt"`
	CreatedAt       time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`
	Routine         WeekRoutine  `bson:"routine" json:"routine"`
	History         []ChatRecord `bson:"history" json:"history"`
	Money           Money        `bson:"money" json:"money"`
}
