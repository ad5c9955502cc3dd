package usecase

import (
	"context"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
)

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, channelID, subscriberID string) (*dto.ToggleResult, error)
	ListSubscribers(ctx context.Context, channelID string) ([]dto.SubscribedUser, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]dto.SubscribedUser, error)
}

type subscriptionUsecase struct {
	subscriptionRepository repository.ISubscription
	userRepository         repository.IUser
}

func NewSubscriptionUsecase(subscriptionRepository repository.ISubscription, userRepository repository.IUser) ISubscriptionUsecase {
	return &subscriptionUsecase{
		subscriptionRepository: subscriptionRepository,
		userRepository:         userRepository,
	}
}

func (u *subscriptionUsecase) Toggle(ctx context.Context, channelID, subscriberID string) (*dto.ToggleResult, error) {
	channel, err := parseObjectID(channelID, "channelId")
	if err != nil {
		return nil, err
	}
	subscriber, err := parseObjectID(subscriberID, "userId")
	if err != nil {
		return nil, err
	}
	if channel == subscriber {
		return nil, model.NewValidationError("You cannot subscribe to your own channel")
	}
	if _, err := u.userRepository.GetByID(ctx, channel); err != nil {
		return nil, err
	}

	added, err := u.subscriptionRepository.Toggle(ctx, subscriber, channel)
	if err != nil {
		return nil, err
	}
	state := "removed"
	if added {
		state = "added"
	}
	return &dto.ToggleResult{Toggled: true, State: state}, nil
}

func (u *subscriptionUsecase) ListSubscribers(ctx context.Context, channelID string) ([]dto.SubscribedUser, error) {
	channel, err := parseObjectID(channelID, "channelId")
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepository.GetByID(ctx, channel); err != nil {
		return nil, err
	}
	return u.subscriptionRepository.ListSubscribers(ctx, channel)
}

func (u *subscriptionUsecase) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]dto.SubscribedUser, error) {
	subscriber, err := parseObjectID(subscriberID, "userId")
	if err != nil {
		return nil, err
	}
	if _, err := u.userRepository.GetByID(ctx, subscriber); err != nil {
		return nil, err
	}
	return u.subscriptionRepository.ListSubscribedChannels(ctx, subscriber)
}
