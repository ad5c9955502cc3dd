package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Asset is a binary object held by the media host, referenced by its
// delivery URL and the host's opaque identifier.
type Asset struct {
	URL     string `bson:"url" json:"url"`
	AssetID string `bson:"assetId" json:"assetId"`
}

type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	Fullname     string          `bson:"fullname" json:"fullname"`
	Avatar       Asset           `bson:"avatar" json:"avatar"`
	CoverImage   *Asset          `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	WatchHistory []bson.ObjectID `bson:"watchHistory" json:"-"`
	Password     string          `bson:"password" json:"-"`
	RefreshToken string          `bson:"refreshToken,omitempty" json:"-"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}
