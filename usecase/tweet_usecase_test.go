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
	"videotube/usecase"
)

func TestTweetUsecase_Create_EmptyContent(t *testing.T) {
	tweetUsecase := usecase.NewTweetUsecase(new(MockTweetRepository), new(MockUserRepository), new(MockLikeRepository))
	_, err := tweetUsecase.Create(context.Background(), bson.NewObjectID().Hex(), dto.ReqTweet{Content: ""})

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestTweetUsecase_Delete_RemovesLikes(t *testing.T) {
	mockTweetRepository := new(MockTweetRepository)
	mockLikeRepository := new(MockLikeRepository)

	tweetID := bson.NewObjectID()
	owner := bson.NewObjectID()
	mockTweetRepository.On("GetByID", mock.Anything, tweetID).
		Return(&model.Tweet{ID: tweetID, Owner: owner}, nil).
		Once()
	mockTweetRepository.On("Delete", mock.Anything, tweetID).
		Return(nil).
		Once()
	mockLikeRepository.On("DeleteByTweet", mock.Anything, tweetID).
		Return(nil).
		Once()

	tweetUsecase := usecase.NewTweetUsecase(mockTweetRepository, new(MockUserRepository), mockLikeRepository)
	err := tweetUsecase.Delete(context.Background(), tweetID.Hex(), owner.Hex())

	assert.NoError(t, err)
	mockTweetRepository.AssertExpectations(t)
	mockLikeRepository.AssertExpectations(t)
}

func TestTweetUsecase_Update_NotOwner(t *testing.T) {
	mockTweetRepository := new(MockTweetRepository)

	tweetID := bson.NewObjectID()
	mockTweetRepository.On("GetByID", mock.Anything, tweetID).
		Return(&model.Tweet{ID: tweetID, Owner: bson.NewObjectID()}, nil).
		Once()

	tweetUsecase := usecase.NewTweetUsecase(mockTweetRepository, new(MockUserRepository), new(MockLikeRepository))
	_, err := tweetUsecase.Update(context.Background(), tweetID.Hex(), bson.NewObjectID().Hex(), dto.ReqTweet{Content: "edited"})

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}
