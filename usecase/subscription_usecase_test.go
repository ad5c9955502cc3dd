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

func TestSubscriptionUsecase_Toggle_SelfSubscribe(t *testing.T) {
	mockSubscriptionRepository := new(MockSubscriptionRepository)
	mockUserRepository := new(MockUserRepository)

	id := bson.NewObjectID()
	subscriptionUsecase := usecase.NewSubscriptionUsecase(mockSubscriptionRepository, mockUserRepository)
	_, err := subscriptionUsecase.Toggle(context.Background(), id.Hex(), id.Hex())

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	mockSubscriptionRepository.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionUsecase_Toggle_AddThenRemove(t *testing.T) {
	mockSubscriptionRepository := new(MockSubscriptionRepository)
	mockUserRepository := new(MockUserRepository)

	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()
	mockUserRepository.On("GetByID", mock.Anything, channel).
		Return(&model.User{ID: channel}, nil).
		Twice()
	mockSubscriptionRepository.On("Toggle", mock.Anything, subscriber, channel).
		Return(true, nil).
		Once()
	mockSubscriptionRepository.On("Toggle", mock.Anything, subscriber, channel).
		Return(false, nil).
		Once()

	subscriptionUsecase := usecase.NewSubscriptionUsecase(mockSubscriptionRepository, mockUserRepository)

	first, err := subscriptionUsecase.Toggle(context.Background(), channel.Hex(), subscriber.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "added", first.State)

	second, err := subscriptionUsecase.Toggle(context.Background(), channel.Hex(), subscriber.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "removed", second.State)
}

func TestSubscriptionUsecase_Toggle_MissingChannel(t *testing.T) {
	mockSubscriptionRepository := new(MockSubscriptionRepository)
	mockUserRepository := new(MockUserRepository)

	channel := bson.NewObjectID()
	mockUserRepository.On("GetByID", mock.Anything, channel).
		Return(nil, model.NewNotFoundError("User not found")).
		Once()

	subscriptionUsecase := usecase.NewSubscriptionUsecase(mockSubscriptionRepository, mockUserRepository)
	_, err := subscriptionUsecase.Toggle(context.Background(), channel.Hex(), bson.NewObjectID().Hex())

	apiErr, ok := model.AsApiError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
