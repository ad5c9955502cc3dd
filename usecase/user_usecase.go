package usecase

import (
	"context"
	"strings"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/security"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const minPasswordLength = 8

type IUserUsecase interface {
	Register(ctx context.Context, req dto.ReqRegister, avatarPath, coverImagePath string) (*model.User, error)
	Login(ctx context.Context, req dto.ReqLogin) (*dto.ResLogin, error)
	Logout(ctx context.Context, userID string) error
	RefreshToken(ctx context.Context, incomingToken string) (*dto.TokenPair, error)
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
	ChangePassword(ctx context.Context, userID string, req dto.ReqChangePassword) error
	UpdateDetails(ctx context.Context, userID string, req dto.ReqUpdateUserDetails) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID, localFilePath string) (*model.User, error)
	UpdateCoverImage(ctx context.Context, userID, localFilePath string) (*model.User, error)
	GetChannelProfile(ctx context.Context, username, viewerID string) (*dto.ChannelProfile, error)
	GetWatchHistory(ctx context.Context, userID string) ([]dto.VideoWithOwner, error)
}

type userUsecase struct {
	userRepository repository.IUser
	media          repository.IMedia
	tokenManager   security.ITokenManager
}

func NewUserUsecase(userRepository repository.IUser, media repository.IMedia, tokenManager security.ITokenManager) IUserUsecase {
	return &userUsecase{
		userRepository: userRepository,
		media:          media,
		tokenManager:   tokenManager,
	}
}

func (u *userUsecase) Register(ctx context.Context, req dto.ReqRegister, avatarPath, coverImagePath string) (*model.User, error) {
	fullname := strings.TrimSpace(req.Fullname)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	username := strings.TrimSpace(strings.ToLower(req.Username))

	if fullname == "" {
		return nil, model.NewValidationError("fullname is required")
	}
	if email == "" {
		return nil, model.NewValidationError("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, model.NewValidationError("email is invalid")
	}
	if username == "" {
		return nil, model.NewValidationError("username is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, model.NewValidationError("password must be at least 8 characters")
	}
	if avatarPath == "" {
		return nil, model.NewValidationError("Avatar file is required")
	}

	if existing, err := u.userRepository.GetByUsernameOrEmail(ctx, username, email); err == nil && existing != nil {
		return nil, model.NewConflictError("user already exists")
	}

	avatar, err := u.media.Upload(ctx, avatarPath)
	if err != nil {
		return nil, err
	}

	var coverImage *model.Asset
	if coverImagePath != "" {
		uploaded, err := u.media.Upload(ctx, coverImagePath)
		if err != nil {
			return nil, err
		}
		coverImage = &model.Asset{URL: uploaded.URL, AssetID: uploaded.AssetID}
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:   username,
		Email:      email,
		Fullname:   fullname,
		Avatar:     model.Asset{URL: avatar.URL, AssetID: avatar.AssetID},
		CoverImage: coverImage,
		Password:   hash,
	}
	return u.userRepository.Create(ctx, user)
}

func (u *userUsecase) Login(ctx context.Context, req dto.ReqLogin) (*dto.ResLogin, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if username == "" && email == "" {
		return nil, model.NewValidationError("username or email is required")
	}

	user, err := u.userRepository.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if !security.VerifyPassword(req.Password, user.Password) {
		return nil, model.NewAuthenticationError("Password is not correct")
	}

	pair, err := u.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.ResLogin{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// issueTokenPair signs a fresh pair and persists the refresh token; there is
// a single active refresh token per user, so issuing invalidates the old one.
func (u *userUsecase) issueTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	pair, err := u.tokenManager.IssueTokenPair(user)
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepository.Update(ctx, user.ID, dto.UserPatch{RefreshToken: &pair.RefreshToken}); err != nil {
		return nil, err
	}
	return pair, nil
}

func (u *userUsecase) Logout(ctx context.Context, userID string) error {
	id, err := parseObjectID(userID, "userId")
	if err != nil {
		return err
	}
	return u.userRepository.ClearRefreshToken(ctx, id)
}

func (u *userUsecase) RefreshToken(ctx context.Context, incomingToken string) (*dto.TokenPair, error) {
	if incomingToken == "" {
		return nil, model.NewAuthenticationError("Unauthorized request")
	}

	claims, err := u.tokenManager.VerifyRefreshToken(incomingToken)
	if err != nil {
		return nil, model.NewAuthenticationError("Invalid refresh token")
	}

	id, err := bson.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, model.NewAuthenticationError("Invalid refresh token")
	}
	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, model.NewAuthenticationError("Invalid refresh token")
	}

	// A token that verified but no longer matches the stored one was rotated
	// out; treat it as reuse.
	if user.RefreshToken != incomingToken {
		return nil, model.NewAuthenticationError("Refresh token is expired or used")
	}

	return u.issueTokenPair(ctx, user)
}

func (u *userUsecase) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	id, err := parseObjectID(userID, "userId")
	if err != nil {
		return nil, err
	}
	return u.userRepository.GetByID(ctx, id)
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID string, req dto.ReqChangePassword) error {
	id, err := parseObjectID(userID, "userId")
	if err != nil {
		return err
	}
	if len(req.NewPassword) < minPasswordLength {
		return model.NewValidationError("password must be at least 8 characters")
	}

	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !security.VerifyPassword(req.OldPassword, user.Password) {
		return model.NewValidationError("Invalid old password")
	}

	hash, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	_, err = u.userRepository.Update(ctx, id, dto.UserPatch{Password: &hash})
	return err
}

func (u *userUsecase) UpdateDetails(ctx context.Context, userID string, req dto.ReqUpdateUserDetails) (*model.User, error) {
	id, err := parseObjectID(userID, "userId")
	if err != nil {
		return nil, err
	}

	patch := dto.UserPatch{}
	if req.Fullname != nil {
		fullname := strings.TrimSpace(*req.Fullname)
		if fullname == "" {
			return nil, model.NewValidationError("fullname is required")
		}
		patch.Fullname = &fullname
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, model.NewValidationError("email is invalid")
		}
		patch.Email = &email
	}
	if patch.Fullname == nil && patch.Email == nil {
		return nil, model.NewValidationError("fullname or email is required")
	}

	return u.userRepository.Update(ctx, id, patch)
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, userID, localFilePath string) (*model.User, error) {
	return u.updateImage(ctx, userID, localFilePath, true)
}

func (u *userUsecase) UpdateCoverImage(ctx context.Context, userID, localFilePath string) (*model.User, error) {
	return u.updateImage(ctx, userID, localFilePath, false)
}

func (u *userUsecase) updateImage(ctx context.Context, userID, localFilePath string, isAvatar bool) (*model.User, error) {
	id, err := parseObjectID(userID, "userId")
	if err != nil {
		return nil, err
	}
	if localFilePath == "" {
		return nil, model.NewValidationError("Image file is required")
	}

	user, err := u.userRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uploaded, err := u.media.Upload(ctx, localFilePath)
	if err != nil {
		return nil, err
	}
	asset := model.Asset{URL: uploaded.URL, AssetID: uploaded.AssetID}

	patch := dto.UserPatch{}
	var oldAssetID string
	if isAvatar {
		patch.Avatar = &asset
		oldAssetID = user.Avatar.AssetID
	} else {
		patch.CoverImage = &asset
		if user.CoverImage != nil {
			oldAssetID = user.CoverImage.AssetID
		}
	}

	updated, err := u.userRepository.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	// The old asset goes only after the replacement is persisted, so a failed
	// write never leaves the user without an image.
	if oldAssetID != "" {
		if err := u.media.Delete(ctx, oldAssetID, model.MediaKindImage); err != nil {
			logger.GetLogger().WithField("assetId", oldAssetID).WithField("error", err).Warn("Error while deleting replaced image")
		}
	}
	return updated, nil
}

func (u *userUsecase) GetChannelProfile(ctx context.Context, username, viewerID string) (*dto.ChannelProfile, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, model.NewValidationError("username is required")
	}

	viewer := bson.ObjectID{}
	if viewerID != "" {
		parsed, err := parseObjectID(viewerID, "userId")
		if err != nil {
			return nil, err
		}
		viewer = parsed
	}
	return u.userRepository.GetChannelProfile(ctx, username, viewer)
}

func (u *userUsecase) GetWatchHistory(ctx context.Context, userID string) ([]dto.VideoWithOwner, error) {
	id, err := parseObjectID(userID, "userId")
	if err != nil {
		return nil, err
	}
	return u.userRepository.GetWatchHistory(ctx, id)
}
