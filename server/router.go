package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"videotube/domain/repository"
	"videotube/infrastructure/configuration"
	"videotube/infrastructure/security"
	httpHandler "videotube/interfaces/http"
	"videotube/interfaces/middleware"
)

type Handlers struct {
	Healthcheck  httpHandler.IHealthcheckHandler
	User         httpHandler.IUserHandler
	Video        httpHandler.IVideoHandler
	Comment      httpHandler.ICommentHandler
	Like         httpHandler.ILikeHandler
	Tweet        httpHandler.ITweetHandler
	Playlist     httpHandler.IPlaylistHandler
	Subscription httpHandler.ISubscriptionHandler
	Dashboard    httpHandler.IDashboardHandler
}

func InitiateRouter(
	handlers Handlers,
	tokenManager security.ITokenManager,
	userRepository repository.IUser,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     configuration.C.Cors.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := router.Group("/api/v1")

	v1.GET("/healthcheck", handlers.Healthcheck.Healthcheck)
	v1.POST("/users/register", handlers.User.Register)
	v1.POST("/users/login", handlers.User.Login)
	v1.POST("/users/refresh-token", handlers.User.RefreshToken)

	api := v1.Group("")
	api.Use(middleware.Auth(tokenManager, userRepository))

	users := api.Group("/users")
	{
		users.POST("/logout", handlers.User.Logout)
		users.GET("/current-user", handlers.User.CurrentUser)
		users.POST("/change-password", handlers.User.ChangePassword)
		users.PATCH("/update-account", handlers.User.UpdateDetails)
		users.PATCH("/avatar", handlers.User.UpdateAvatar)
		users.PATCH("/cover-image", handlers.User.UpdateCoverImage)
		users.GET("/channel/:username", handlers.User.ChannelProfile)
		users.GET("/history", handlers.User.WatchHistory)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", handlers.Video.List)
		videos.POST("", handlers.Video.Publish)
		videos.GET("/:videoId", handlers.Video.Get)
		videos.PATCH("/:videoId", handlers.Video.Update)
		videos.DELETE("/:videoId", handlers.Video.Delete)
		videos.PATCH("/toggle/publish/:videoId", handlers.Video.TogglePublish)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:videoId", handlers.Comment.List)
		comments.POST("/:videoId", handlers.Comment.Add)
		comments.PATCH("/c/:commentId", handlers.Comment.Update)
		comments.DELETE("/c/:commentId", handlers.Comment.Delete)
	}

	likes := api.Group("/likes")
	{
		likes.POST("/toggle/v/:videoId", handlers.Like.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", handlers.Like.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", handlers.Like.ToggleTweetLike)
		likes.GET("/videos", handlers.Like.LikedVideos)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", handlers.Tweet.Create)
		tweets.GET("/user/:userId", handlers.Tweet.ListByUser)
		tweets.PATCH("/:tweetId", handlers.Tweet.Update)
		tweets.DELETE("/:tweetId", handlers.Tweet.Delete)
	}

	playlists := api.Group("/playlist")
	{
		playlists.POST("", handlers.Playlist.Create)
		playlists.GET("/:playlistId", handlers.Playlist.Get)
		playlists.PATCH("/:playlistId", handlers.Playlist.Update)
		playlists.DELETE("/:playlistId", handlers.Playlist.Delete)
		playlists.PATCH("/add/:videoId/:playlistId", handlers.Playlist.AddVideo)
		playlists.PATCH("/remove/:videoId/:playlistId", handlers.Playlist.RemoveVideo)
		playlists.GET("/user/:userId", handlers.Playlist.ListByUser)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channelId", handlers.Subscription.Toggle)
		subscriptions.GET("/c/:channelId", handlers.Subscription.ListSubscribers)
		subscriptions.GET("/u/:subscriberId", handlers.Subscription.ListSubscribedChannels)
	}

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/stats", handlers.Dashboard.ChannelStats)
		dashboard.GET("/videos", handlers.Dashboard.ChannelVideos)
	}

	return router
}
