package dto

import "videotube/domain/model"

// ToggleResult reports which way a like/subscription toggle went.
type ToggleResult struct {
	Toggled bool   `json:"toggled"`
	State   string `json:"state"` // added | removed
}

// SubscribedUser is the projection for subscriber / subscribed-to listings.
type SubscribedUser struct {
	ID       string      `json:"id" bson:"_id"`
	Username string      `json:"username" bson:"username"`
	Fullname string      `json:"fullname" bson:"fullname"`
	Avatar   model.Asset `json:"avatar" bson:"avatar"`
}
