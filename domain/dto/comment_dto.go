package dto

import "time"

type ReqComment struct {
	Content string `json:"content"`
}

// CommentWithOwner projects the comment author for listings.
type CommentWithOwner struct {
	ID        string     `json:"id" bson:"_id"`
	Content   string     `json:"content" bson:"content"`
	Video     string     `json:"video" bson:"video"`
	Owner     VideoOwner `json:"owner" bson:"owner"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}

type CommentPage struct {
	Docs       []CommentWithOwner `json:"docs"`
	TotalDocs  int64              `json:"totalDocs"`
	Page       int64              `json:"page"`
	Limit      int64              `json:"limit"`
	TotalPages int64              `json:"totalPages"`
}
