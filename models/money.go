// models/money.go
package models

// BankAccount is one named balance in the user's money book.
type BankAccount struct {
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
}

// Spending is a single dated expense line.
type Spending struct {
	Date string  `bson:"date" json:"date"`
	Item string  `bson:"item" json:"item"`
	Cost float64 `bson:"cost" json:"cost"`
}

// MoneyMonth groups spendings under a month label.
type MoneyMonth struct {
	Name      string     `bson:"name" json:"name"`
	Spendings []Spending `bson:"spendings" json:"spendings"`
}

// Money is the user's simple bookkeeping record.
type Money struct {
	Banks  []BankAccount `bson:"banks" json:"banks"`
	InCash float64       `bson:"inCash" json:"inCash"`
	Months []MoneyMonth  `bson:"months" json:"months"`
}
