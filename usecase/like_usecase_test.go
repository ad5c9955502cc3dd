package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/model"
	"videotube/usecase"
)

func TestLikeUsecase_ToggleVideoLike_AddThenRemove(t *testing.T) {
	mockLikeRepository := new(MockLikeRepository)
	mockVideoRepository := new(MockVideoRepository)

	videoID := bson.NewObjectID()
	actor := bson.NewObjectID()
	mockVideoRepository.On("GetByID", mock.Anything, videoID).
		Return(&model.Video{ID: videoID, IsPublished: true}, nil).
		Twice()
	mockLikeRepository.On("Toggle", mock.Anything, actor, videoID, model.LikeTargetVideo).
		Return(true, nil).
		Once()
	mockLikeRepository.On("Toggle", mock.Anything, actor, videoID, model.LikeTargetVideo).
		Return(false, nil).
		Once()

	likeUsecase := usecase.NewLikeUsecase(mockLikeRepository, mockVideoRepository, new(MockCommentRepository), new(MockTweetRepository))

	first, err := likeUsecase.ToggleVideoLike(context.Background(), videoID.Hex(), actor.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "added", first.State)

	second, err := likeUsecase.ToggleVideoLike(context.Background(), videoID.Hex(), actor.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "removed", second.State)

	mockLikeRepository.AssertExpectations(t)
}

func TestLikeUsecase_ToggleCommentLike_MissingComment(t *testing.T) {
	mockCommentRepository := new(MockCommentRepository)

	commentID := bson.NewObjectID()
	mockCommentRepository.On("GetByID", mock.Anything, commentID).
		Return(nil, model.NewNotFoundError("Comment not found")).
		Once()

	likeUsecase := usecase.NewLikeUsecase(new(MockLikeRepository), new(MockVideoRepository), mockCommentRepository, new(MockTweetRepository))
	_, err := likeUsecase.ToggleCommentLike(context.Background(), commentID.Hex(), bson.NewObjectID().Hex())

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestLikeUsecase_ToggleTweetLike(t *testing.T) {
	mockLikeRepository := new(MockLikeRepository)
	mockTweetRepository := new(MockTweetRepository)

	tweetID := bson.NewObjectID()
	actor := bson.NewObjectID()
	mockTweetRepository.On("GetByID", mock.Anything, tweetID).
		Return(&model.Tweet{ID: tweetID}, nil).
		Once()
	mockLikeRepository.On("Toggle", mock.Anything, actor, tweetID, model.LikeTargetTweet).
		Return(true, nil).
		Once()

	likeUsecase := usecase.NewLikeUsecase(mockLikeRepository, new(MockVideoRepository), new(MockCommentRepository), mockTweetRepository)
	result, err := likeUsecase.ToggleTweetLike(context.Background(), tweetID.Hex(), actor.Hex())

	assert.NoError(t, err)
	assert.True(t, result.Toggled)
	assert.Equal(t, "added", result.State)
}

func TestLikeUsecase_InvalidID(t *testing.T) {
	likeUsecase := usecase.NewLikeUsecase(new(MockLikeRepository), new(MockVideoRepository), new(MockCommentRepository), new(MockTweetRepository))
	_, err := likeUsecase.ToggleVideoLike(context.Background(), "nope", bson.NewObjectID().Hex())

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
