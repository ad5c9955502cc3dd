package dto

import (
	"time"

	"videotube/domain/model"
)

type ReqPublishVideo struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type ReqUpdateVideo struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// VideoPatch is applied by the video repository; only non-nil fields are set.
type VideoPatch struct {
	Title       *string
	Description *string
	Thumbnail   *model.Asset
	IsPublished *bool
}

// ListVideosQuery drives the paginated listing. Query is matched as a
// case-insensitive substring of the title.
type ListVideosQuery struct {
	Page     int64
	Limit    int64
	Query    string
	SortBy   string
	SortType string
	OwnerID  string
}

// VideoPage is a page of videos plus total-count metadata.
type VideoPage struct {
	Docs       []model.Video `json:"docs"`
	TotalDocs  int64         `json:"totalDocs"`
	Page       int64         `json:"page"`
	Limit      int64         `json:"limit"`
	TotalPages int64         `json:"totalPages"`
}

// VideoWithOwner is the two-level join used by watch history and the
// liked-videos listing.
type VideoWithOwner struct {
	ID          string      `json:"id" bson:"_id"`
	VideoFile   model.Asset `json:"videoFile" bson:"videoFile"`
	Thumbnail   model.Asset `json:"thumbnail" bson:"thumbnail"`
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description" bson:"description"`
	Duration    float64     `json:"duration" bson:"duration"`
	Views       int64       `json:"views" bson:"views"`
	IsPublished bool        `json:"isPublished" bson:"isPublished"`
	Owner       VideoOwner  `json:"owner" bson:"owner"`
	CreatedAt   time.Time   `json:"createdAt" bson:"createdAt"`
}
