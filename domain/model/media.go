package model

// MediaKind tells the media host which resource type an asset id refers to.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)
