package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"videotube/infrastructure/cache"
	"videotube/infrastructure/configuration"
	"videotube/infrastructure/logger"
	"videotube/infrastructure/media"
	"videotube/infrastructure/persistence"
	"videotube/infrastructure/security"
	httpHandler "videotube/interfaces/http"
	"videotube/server"
	"videotube/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	configuration.LoadEnvFromFile("config.env", ".env")
	app := configuration.C.App

	mongoClient, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB initialization failed")
		os.Exit(1)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("MongoDB ping failed")
		os.Exit(1)
	}
	logger.GetLogger().Info("MongoDB connected successfully")

	db := mongoClient.Database(configuration.C.Database.Mongo.Name)
	if err := persistence.EnsureIndexes(ctx, db); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating indexes")
		os.Exit(1)
	}

	// Redis is optional; the stats cache degrades to a pass-through on nil.
	redisClient, _ := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	statsCache := cache.NewStatsCache(redisClient)

	mediaClient := media.NewCloudinaryClient(
		configuration.C.Media.CloudName,
		configuration.C.Media.APIKey,
		configuration.C.Media.APISecret,
	)
	tokenManager := security.NewTokenManager(
		configuration.C.Auth.AccessTokenSecret,
		configuration.C.Auth.RefreshTokenSecret,
		time.Duration(configuration.C.Auth.AccessTokenExpiry)*time.Minute,
		time.Duration(configuration.C.Auth.RefreshTokenExpiry)*24*time.Hour,
	)

	userRepository := persistence.NewUserRepository(db)
	videoRepository := persistence.NewVideoRepository(db)
	commentRepository := persistence.NewCommentRepository(db)
	likeRepository := persistence.NewLikeRepository(db)
	tweetRepository := persistence.NewTweetRepository(db)
	playlistRepository := persistence.NewPlaylistRepository(db)
	subscriptionRepository := persistence.NewSubscriptionRepository(db)
	dashboardRepository := persistence.NewDashboardRepository(db)

	userUsecase := usecase.NewUserUsecase(userRepository, mediaClient, tokenManager)
	videoUsecase := usecase.NewVideoUsecase(videoRepository, userRepository, commentRepository, likeRepository, playlistRepository, mediaClient)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, videoRepository, likeRepository)
	likeUsecase := usecase.NewLikeUsecase(likeRepository, videoRepository, commentRepository, tweetRepository)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepository, userRepository, likeRepository)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepository, videoRepository, userRepository)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepository, userRepository)
	dashboardUsecase := usecase.NewDashboardUsecase(dashboardRepository, videoRepository, statsCache)

	handlers := server.Handlers{
		Healthcheck:  httpHandler.NewHealthcheckHandler(),
		User:         httpHandler.NewUserHandler(userUsecase),
		Video:        httpHandler.NewVideoHandler(videoUsecase),
		Comment:      httpHandler.NewCommentHandler(commentUsecase),
		Like:         httpHandler.NewLikeHandler(likeUsecase),
		Tweet:        httpHandler.NewTweetHandler(tweetUsecase),
		Playlist:     httpHandler.NewPlaylistHandler(playlistUsecase),
		Subscription: httpHandler.NewSubscriptionHandler(subscriptionUsecase),
		Dashboard:    httpHandler.NewDashboardHandler(dashboardUsecase),
	}

	router := server.InitiateRouter(handlers, tokenManager, userRepository)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while disconnecting MongoDB")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
