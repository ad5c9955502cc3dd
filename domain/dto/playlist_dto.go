package dto

type ReqPlaylist struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ReqTweet struct {
	Content string `json:"content"`
}
