// models/chat.go
package models

// ChatRecord is one persisted assistant exchange on the user document.
type ChatRecord struct {
	Date   string `bson:"date" json:"date"`
	Prompt string `bson:"prompt" json:"prompt"`
	Reply  string `bson:"reply" json:"reply"`
}
