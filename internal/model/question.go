package model

import "time"

// TriviaItem is one record of the question bank, as stored in the JSON file
// or the questions collection.
type TriviaItem struct {
	Title  string `json:"title" bson:"title"`
	Emojis string `json:"emojis" bson:"emojis"`
	Type   string `json:"type" bson:"type"`
}

// Question is the runtime instance of the item currently in play. It is
// replaced, never mutated, at each question selection.
type Question struct {
	Index     int
	Title     string
	Emojis    string
	Type      string
	StartTime time.Time
}

// QuestionView is what clients see during the question phase. The title
// never leaves the server before reveal.
type QuestionView struct {
	Emojis    string `json:"emojis"`
	TimeLimit int    `json:"timeLimit"`
	Type      string `json:"type"`
}
