package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/mapper"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/adapter/http/validation"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
	"taskdesk/pkg/apierrors"
	"taskdesk/pkg/translator"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	page := intQuery(c, "page", domain.DefaultPage)
	limit := intQuery(c, "limit", domain.DefaultLimit)

	filter := domain.UserFilter{}
	if value := c.Query("role"); value != "" {
		role := domain.UserRole(value)
		filter.Role = &role
	}

	users, pagination, err := h.userService.ListUsers(c.Request.Context(), filter, page, limit)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ListUsersResponse{
		Data:       mapper.ToUserItems(users),
		Pagination: mapper.ToPagination(pagination),
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := pathID(c, lang)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get user", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: mapper.ToUserItem(user)})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateErrorWithDetails(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang, bindingDetails(err)),
		)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), validation.BuildCreateUserInput(req))
	if err != nil {
		h.respondCreateUserError(c, lang, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: translator.Localize("userCreated", lang),
		Data:    mapper.ToUserItem(user),
	})
}

func (h *UserHandler) respondCreateUserError(c *gin.Context, lang string, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingRequiredField):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingField, lang),
		)
	case errors.Is(err, domain.ErrInvalidEmailFormat):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidEmail, lang),
		)
	case errors.Is(err, domain.ErrInvalidEnumValue):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRole, lang),
		)
	case errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(
			http.StatusConflict,
			apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateEmail, lang),
		)
	default:
		zap.L().Error("failed to create user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
	}
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := pathID(c, lang)
	if !ok {
		return
	}

	req, err := decodeUpdateUserBody(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserPayload, lang),
		)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, validation.BuildUpdateUserInput(req))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateEmail, lang),
			)
		default:
			zap.L().Error("failed to update user", zap.Int64("user_id", userID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: translator.Localize("userUpdated", lang),
		Data:    mapper.ToUserItem(user),
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := pathID(c, lang)
	if !ok {
		return
	}

	user, err := h.userService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete user", zap.Int64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: translator.Localize("userDeleted", lang),
		Data:    mapper.ToUserItem(user),
	})
}

func decodeUpdateUserBody(c *gin.Context) (dto.UpdateUserRequest, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return dto.UpdateUserRequest{}, err
	}

	// An empty body is an empty update, not a malformed one.
	if len(bytes.TrimSpace(body)) == 0 {
		return dto.UpdateUserRequest{}, nil
	}

	var req dto.UpdateUserRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return dto.UpdateUserRequest{}, err
	}
	return req, nil
}
