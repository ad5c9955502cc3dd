package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Like references exactly one of Video, Comment or Tweet. The unused
// references stay nil so the partial unique indexes on (likedBy, target)
// apply per target kind.
type Like struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Video     *bson.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Comment   *bson.ObjectID `bson:"comment,omitempty" json:"comment,omitempty"`
	Tweet     *bson.ObjectID `bson:"tweet,omitempty" json:"tweet,omitempty"`
	LikedBy   bson.ObjectID  `bson:"likedBy" json:"likedBy"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// LikeTargetKind selects which reference a toggle operates on.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)
