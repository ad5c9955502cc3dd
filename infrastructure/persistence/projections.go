package persistence

import (
	"time"

	"videotube/domain/dto"
	"videotube/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Internal decode targets for aggregation output. ObjectIDs are converted to
// hex at the repository boundary so DTOs stay storage-agnostic.

type ownerDoc struct {
	ID       bson.ObjectID `bson:"_id"`
	Username string        `bson:"username"`
	Fullname string        `bson:"fullname"`
	Avatar   model.Asset   `bson:"avatar"`
}

func (d ownerDoc) toDTO() dto.VideoOwner {
	return dto.VideoOwner{
		ID:       d.ID.Hex(),
		Username: d.Username,
		Fullname: d.Fullname,
		Avatar:   d.Avatar,
	}
}

type videoWithOwnerDoc struct {
	ID          bson.ObjectID `bson:"_id"`
	VideoFile   model.Asset   `bson:"videoFile"`
	Thumbnail   model.Asset   `bson:"thumbnail"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	Duration    float64       `bson:"duration"`
	Views       int64         `bson:"views"`
	IsPublished bool          `bson:"isPublished"`
	Owner       ownerDoc      `bson:"owner"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

func (d videoWithOwnerDoc) toDTO() dto.VideoWithOwner {
	return dto.VideoWithOwner{
		ID:          d.ID.Hex(),
		VideoFile:   d.VideoFile,
		Thumbnail:   d.Thumbnail,
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		Views:       d.Views,
		IsPublished: d.IsPublished,
		Owner:       d.Owner.toDTO(),
		CreatedAt:   d.CreatedAt,
	}
}

func videosWithOwnerToDTO(docs []videoWithOwnerDoc) []dto.VideoWithOwner {
	out := make([]dto.VideoWithOwner, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDTO())
	}
	return out
}

type subscribedUserDoc struct {
	ID       bson.ObjectID `bson:"_id"`
	Username string        `bson:"username"`
	Fullname string        `bson:"fullname"`
	Avatar   model.Asset   `bson:"avatar"`
}

func subscribedUsersToDTO(docs []subscribedUserDoc) []dto.SubscribedUser {
	out := make([]dto.SubscribedUser, 0, len(docs))
	for _, d := range docs {
		out = append(out, dto.SubscribedUser{
			ID:       d.ID.Hex(),
			Username: d.Username,
			Fullname: d.Fullname,
			Avatar:   d.Avatar,
		})
	}
	return out
}

func totalPages(totalDocs, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pages := totalDocs / limit
	if totalDocs%limit != 0 {
		pages++
	}
	return pages
}
