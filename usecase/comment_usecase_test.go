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

func TestCommentUsecase_Add_EmptyContent(t *testing.T) {
	commentUsecase := usecase.NewCommentUsecase(new(MockCommentRepository), new(MockVideoRepository), new(MockLikeRepository))
	_, err := commentUsecase.Add(context.Background(), bson.NewObjectID().Hex(), bson.NewObjectID().Hex(), dto.ReqComment{Content: "   "})

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestCommentUsecase_Add_MissingVideo(t *testing.T) {
	mockVideoRepository := new(MockVideoRepository)

	videoID := bson.NewObjectID()
	mockVideoRepository.On("GetByID", mock.Anything, videoID).
		Return(nil, model.NewNotFoundError("Video not found")).
		Once()

	commentUsecase := usecase.NewCommentUsecase(new(MockCommentRepository), mockVideoRepository, new(MockLikeRepository))
	_, err := commentUsecase.Add(context.Background(), videoID.Hex(), bson.NewObjectID().Hex(), dto.ReqComment{Content: "nice video"})

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCommentUsecase_Update_NotOwner(t *testing.T) {
	mockCommentRepository := new(MockCommentRepository)

	commentID := bson.NewObjectID()
	mockCommentRepository.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Owner: bson.NewObjectID()}, nil).
		Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepository, new(MockVideoRepository), new(MockLikeRepository))
	_, err := commentUsecase.Update(context.Background(), commentID.Hex(), bson.NewObjectID().Hex(), dto.ReqComment{Content: "edited"})

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestCommentUsecase_Delete_RemovesLikes(t *testing.T) {
	mockCommentRepository := new(MockCommentRepository)
	mockLikeRepository := new(MockLikeRepository)

	commentID := bson.NewObjectID()
	owner := bson.NewObjectID()
	mockCommentRepository.On("GetByID", mock.Anything, commentID).
		Return(&model.Comment{ID: commentID, Owner: owner}, nil).
		Once()
	mockCommentRepository.On("Delete", mock.Anything, commentID).
		Return(nil).
		Once()
	mockLikeRepository.On("DeleteByComment", mock.Anything, commentID).
		Return(nil).
		Once()

	commentUsecase := usecase.NewCommentUsecase(mockCommentRepository, new(MockVideoRepository), mockLikeRepository)
	err := commentUsecase.Delete(context.Background(), commentID.Hex(), owner.Hex())

	assert.NoError(t, err)
	mockCommentRepository.AssertExpectations(t)
	mockLikeRepository.AssertExpectations(t)
}
