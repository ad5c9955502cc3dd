package dto

import "videotube/domain/model"

type ReqRegister struct {
	Fullname string `form:"fullname" json:"fullname"`
	Email    string `form:"email" json:"email"`
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type ReqLogin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ReqChangePassword struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// ReqUpdateUserDetails is the explicit merge patch for account fields.
// Nil means "leave unchanged".
type ReqUpdateUserDetails struct {
	Fullname *string `json:"fullname"`
	Email    *string `json:"email"`
}

type ReqRefreshToken struct {
	RefreshToken string `json:"refreshToken"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type ResLogin struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

// UserPatch is applied by the user repository; only non-nil fields are set.
type UserPatch struct {
	Fullname     *string
	Email        *string
	Avatar       *model.Asset
	CoverImage   *model.Asset
	Password     *string
	RefreshToken *string
}

// ChannelProfile is the projection served for /users/channel/:username.
type ChannelProfile struct {
	ID                        string       `json:"id"`
	Username                  string       `json:"username"`
	Fullname                  string       `json:"fullname"`
	Email                     string       `json:"email"`
	Avatar                    model.Asset  `json:"avatar"`
	CoverImage                *model.Asset `json:"coverImage,omitempty"`
	SubscribersCount          int64        `json:"subscribersCount"`
	ChannelsSubscribedToCount int64        `json:"channelsSubscribedToCount"`
	IsSubscribed              bool         `json:"isSubscribed"`
}

// VideoOwner is the minimal owner projection nested in joined video records.
type VideoOwner struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Fullname string      `json:"fullname"`
	Avatar   model.Asset `json:"avatar"`
}
