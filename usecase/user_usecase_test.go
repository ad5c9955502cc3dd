package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/security"
	"videotube/usecase"
)

func ptr(s string) *string { return &s }

func TestUserUsecase_Register_DuplicateUser(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockMedia := new(MockMedia)
	mockTokenManager := new(MockTokenManager)

	existing := &model.User{ID: bson.NewObjectID(), Username: "johndoe"}
	mockUserRepository.On("GetByUsernameOrEmail", mock.Anything, "johndoe", "john@example.com").
		Return(existing, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepository, mockMedia, mockTokenManager)
	_, err := userUsecase.Register(context.Background(), dto.ReqRegister{
		Fullname: "John Doe",
		Email:    "john@example.com",
		Username: "JohnDoe",
		Password: "supersecret",
	}, "/tmp/avatar.png", "")

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	mockMedia.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUserUsecase_Register_ShortPassword(t *testing.T) {
	userUsecase := usecase.NewUserUsecase(new(MockUserRepository), new(MockMedia), new(MockTokenManager))
	_, err := userUsecase.Register(context.Background(), dto.ReqRegister{
		Fullname: "John Doe",
		Email:    "john@example.com",
		Username: "johndoe",
		Password: "short",
	}, "/tmp/avatar.png", "")

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestUserUsecase_Register_Success(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockMedia := new(MockMedia)
	mockTokenManager := new(MockTokenManager)

	mockUserRepository.On("GetByUsernameOrEmail", mock.Anything, "johndoe", "john@example.com").
		Return(nil, model.NewNotFoundError("User not found")).
		Once()
	mockMedia.On("Upload", mock.Anything, "/tmp/avatar.png").
		Return(&repository.UploadResult{URL: "https://cdn/avatar.png", AssetID: "avatar-1"}, nil).
		Once()
	created := &model.User{ID: bson.NewObjectID(), Username: "johndoe", Email: "john@example.com"}
	mockUserRepository.On("Create", mock.Anything, mock.AnythingOfType("model.User")).
		Return(created, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepository, mockMedia, mockTokenManager)
	user, err := userUsecase.Register(context.Background(), dto.ReqRegister{
		Fullname: "John Doe",
		Email:    "John@Example.com",
		Username: "JohnDoe",
		Password: "supersecret",
	}, "/tmp/avatar.png", "")

	assert.NoError(t, err)
	assert.Equal(t, "johndoe", user.Username)
	mockUserRepository.AssertExpectations(t)
	mockMedia.AssertExpectations(t)
}

func TestUserUsecase_Login_WrongPassword(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockTokenManager := new(MockTokenManager)

	hash, err := security.HashPassword("correct-password")
	assert.NoError(t, err)

	stored := &model.User{ID: bson.NewObjectID(), Username: "johndoe", Password: hash}
	mockUserRepository.On("GetByUsernameOrEmail", mock.Anything, "johndoe", "").
		Return(stored, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepository, new(MockMedia), mockTokenManager)
	_, err = userUsecase.Login(context.Background(), dto.ReqLogin{Username: "johndoe", Password: "wrong-password"})

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	mockTokenManager.AssertNotCalled(t, "IssueTokenPair", mock.Anything)
}

func TestUserUsecase_Login_PersistsRefreshToken(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockTokenManager := new(MockTokenManager)

	hash, err := security.HashPassword("correct-password")
	assert.NoError(t, err)

	userID := bson.NewObjectID()
	stored := &model.User{ID: userID, Username: "johndoe", Password: hash}
	pair := &dto.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	mockUserRepository.On("GetByUsernameOrEmail", mock.Anything, "johndoe", "").
		Return(stored, nil).
		Once()
	mockTokenManager.On("IssueTokenPair", stored).
		Return(pair, nil).
		Once()
	mockUserRepository.On("Update", mock.Anything, userID, dto.UserPatch{RefreshToken: ptr("refresh")}).
		Return(stored, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepository, new(MockMedia), mockTokenManager)
	res, err := userUsecase.Login(context.Background(), dto.ReqLogin{Username: "johndoe", Password: "correct-password"})

	assert.NoError(t, err)
	assert.Equal(t, "access", res.AccessToken)
	assert.Equal(t, "refresh", res.RefreshToken)
	mockUserRepository.AssertExpectations(t)
	mockTokenManager.AssertExpectations(t)
}

func TestUserUsecase_RefreshToken_RotatedTokenReuse(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockTokenManager := new(MockTokenManager)

	userID := bson.NewObjectID()
	mockTokenManager.On("VerifyRefreshToken", "old-token").
		Return(&model.RefreshTokenClaims{ID: userID.Hex()}, nil).
		Once()
	// The stored token differs: "old-token" was rotated out.
	mockUserRepository.On("GetByID", mock.Anything, userID).
		Return(&model.User{ID: userID, RefreshToken: "current-token"}, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepository, new(MockMedia), mockTokenManager)
	_, err := userUsecase.RefreshToken(context.Background(), "old-token")

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Refresh token is expired or used", apiErr.Message)
}

func TestUserUsecase_RefreshToken_Rotation(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockTokenManager := new(MockTokenManager)

	userID := bson.NewObjectID()
	stored := &model.User{ID: userID, RefreshToken: "current-token"}
	fresh := &dto.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

	mockTokenManager.On("VerifyRefreshToken", "current-token").
		Return(&model.RefreshTokenClaims{ID: userID.Hex()}, nil).
		Once()
	mockUserRepository.On("GetByID", mock.Anything, userID).
		Return(stored, nil).
		Once()
	mockTokenManager.On("IssueTokenPair", stored).
		Return(fresh, nil).
		Once()
	mockUserRepository.On("Update", mock.Anything, userID, dto.UserPatch{RefreshToken: ptr("new-refresh")}).
		Return(stored, nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepository, new(MockMedia), mockTokenManager)
	pair, err := userUsecase.RefreshToken(context.Background(), "current-token")

	assert.NoError(t, err)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
	mockUserRepository.AssertExpectations(t)
	mockTokenManager.AssertExpectations(t)
}

func TestUserUsecase_RefreshToken_Missing(t *testing.T) {
	userUsecase := usecase.NewUserUsecase(new(MockUserRepository), new(MockMedia), new(MockTokenManager))
	_, err := userUsecase.RefreshToken(context.Background(), "")

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestUserUsecase_UpdateAvatar_DeletesOldAssetAfterPersist(t *testing.T) {
	mockUserRepository := new(MockUserRepository)
	mockMedia := new(MockMedia)

	userID := bson.NewObjectID()
	stored := &model.User{ID: userID, Avatar: model.Asset{URL: "https://cdn/old.png", AssetID: "old-avatar"}}
	mockUserRepository.On("GetByID", mock.Anything, userID).
		Return(stored, nil).
		Once()
	mockMedia.On("Upload", mock.Anything, "/tmp/new.png").
		Return(&repository.UploadResult{URL: "https://cdn/new.png", AssetID: "new-avatar"}, nil).
		Once()
	mockUserRepository.On("Update", mock.Anything, userID, mock.AnythingOfType("dto.UserPatch")).
		Return(stored, nil).
		Once()
	mockMedia.On("Delete", mock.Anything, "old-avatar", model.MediaKindImage).
		Return(nil).
		Once()

	userUsecase := usecase.NewUserUsecase(mockUserRepository, mockMedia, new(MockTokenManager))
	_, err := userUsecase.UpdateAvatar(context.Background(), userID.Hex(), "/tmp/new.png")

	assert.NoError(t, err)
	mockMedia.AssertExpectations(t)
}
