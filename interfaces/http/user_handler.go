package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/dto"
	"videotube/infrastructure/logger"
	"videotube/usecase"
)

type IUserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	RefreshToken(c *gin.Context)
	CurrentUser(c *gin.Context)
	ChangePassword(c *gin.Context)
	UpdateDetails(c *gin.Context)
	UpdateAvatar(c *gin.Context)
	UpdateCoverImage(c *gin.Context)
	ChannelProfile(c *gin.Context)
	WatchHistory(c *gin.Context)
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewUserHandler(userUsecase usecase.IUserUsecase) IUserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

func (userHandler *UserHandler) Register(c *gin.Context) {
	var req dto.ReqRegister
	if err := c.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	avatarPath, err := saveUploadedFile(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}
	coverImagePath, err := saveUploadedFile(c, "coverImage")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := userHandler.userUsecase.Register(c.Request.Context(), req, avatarPath, coverImagePath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, user, "User registered successfully")
}

func (userHandler *UserHandler) Login(c *gin.Context) {
	var req dto.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	res, err := userHandler.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookies(c, res.AccessToken, res.RefreshToken)
	respond(c, http.StatusOK, res, "User logged in successfully")
}

func (userHandler *UserHandler) Logout(c *gin.Context) {
	if err := userHandler.userUsecase.Logout(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	clearAuthCookies(c)
	respond(c, http.StatusOK, nil, "User logged out successfully")
}

func (userHandler *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.ReqRefreshToken
	// The token may arrive in the body or as a cookie.
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		req.RefreshToken, _ = c.Cookie("refreshToken")
	}

	pair, err := userHandler.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookies(c, pair.AccessToken, pair.RefreshToken)
	respond(c, http.StatusOK, pair, "Access token refreshed")
}

func (userHandler *UserHandler) CurrentUser(c *gin.Context) {
	user, err := userHandler.userUsecase.CurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Current user fetched successfully")
}

func (userHandler *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ReqChangePassword
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	if err := userHandler.userUsecase.ChangePassword(c.Request.Context(), currentUserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Password changed successfully")
}

func (userHandler *UserHandler) UpdateDetails(c *gin.Context) {
	var req dto.ReqUpdateUserDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	user, err := userHandler.userUsecase.UpdateDetails(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Account details updated successfully")
}

func (userHandler *UserHandler) UpdateAvatar(c *gin.Context) {
	path, err := saveUploadedFile(c, "avatar")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := userHandler.userUsecase.UpdateAvatar(c.Request.Context(), currentUserID(c), path)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Avatar updated successfully")
}

func (userHandler *UserHandler) UpdateCoverImage(c *gin.Context) {
	path, err := saveUploadedFile(c, "coverImage")
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := userHandler.userUsecase.UpdateCoverImage(c.Request.Context(), currentUserID(c), path)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user, "Cover image updated successfully")
}

func (userHandler *UserHandler) ChannelProfile(c *gin.Context) {
	profile, err := userHandler.userUsecase.GetChannelProfile(c.Request.Context(), c.Param("username"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

func (userHandler *UserHandler) WatchHistory(c *gin.Context) {
	history, err := userHandler.userUsecase.GetWatchHistory(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, history, "Watch history fetched successfully")
}

func setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("accessToken", accessToken, 0, "/", "", true, true)
	c.SetCookie("refreshToken", refreshToken, 0, "/", "", true, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}
