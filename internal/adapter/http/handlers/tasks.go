package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

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

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	page := intQuery(c, "page", domain.DefaultPage)
	limit := intQuery(c, "limit", domain.DefaultLimit)
	filter := taskFilterFromQuery(c)

	tasks, pagination, err := h.taskService.ListTasks(c.Request.Context(), filter, page, limit)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ListTasksResponse{
		Data:       mapper.ToTaskItems(tasks),
		Pagination: mapper.ToPagination(pagination),
		Filters:    mapper.ToTaskFilters(filter),
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := pathID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse{Data: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateErrorWithDetails(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang, bindingDetails(err)),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		h.respondCreateTaskError(c, lang, input, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: translator.Localize("taskCreated", lang),
		Data:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) respondCreateTaskError(c *gin.Context, lang string, input domain.CreateTaskInput, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingRequiredField):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingField, lang),
		)
	case errors.Is(err, domain.ErrInvalidEnumValue):
		msgKey := apierrors.MsgInvalidPriority
		if input.Status != nil && !domain.IsValidTaskStatus(*input.Status) {
			msgKey = apierrors.MsgInvalidStatus
		}
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, msgKey, lang))
	default:
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
	}
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := pathID(c, lang)
	if !ok {
		return
	}

	req, raw, err := decodeUpdateTaskBody(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input := validation.BuildUpdateTaskInput(req, raw)
	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: translator.Localize("taskUpdated", lang),
		Data:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) ChangeTaskStatus(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := pathID(c, lang)
	if !ok {
		return
	}

	var req dto.ChangeTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
		)
		return
	}

	// Status is checked before existence so a bogus status on a missing task
	// still reads as 400.
	if req.Status == nil || !domain.IsValidTaskStatus(domain.TaskStatus(*req.Status)) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
		)
		return
	}

	task, transition, err := h.taskService.ChangeTaskStatus(c.Request.Context(), taskID, domain.TaskStatus(*req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidEnumValue):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatus, lang),
			)
		default:
			zap.L().Error("failed to change task status", zap.Int64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
			)
		}
		return
	}

	zap.L().Info("task status transition",
		zap.Int64("task_id", task.ID),
		zap.String("old_status", string(transition.OldStatus)),
		zap.String("new_status", string(transition.NewStatus)),
	)

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: translator.Localize("taskStatusUpdated", lang),
		Data:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := pathID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: translator.Localize("taskDeleted", lang),
		Data:    mapper.ToTaskItem(task),
	})
}

func taskFilterFromQuery(c *gin.Context) domain.TaskFilter {
	filter := domain.TaskFilter{}
	query := c.Request.URL.Query()

	if value := c.Query("status"); value != "" {
		status := domain.TaskStatus(value)
		filter.Status = &status
	}
	if value := c.Query("priority"); value != "" {
		priority := domain.TaskPriority(value)
		filter.Priority = &priority
	}
	// Gate on key presence, not value truthiness: assignedTo=0 is a valid
	// filter.
	if query.Has("assignedTo") {
		if id, err := strconv.ParseInt(c.Query("assignedTo"), 10, 64); err == nil {
			filter.AssignedTo = &id
		}
	}
	if query.Has("overdue") {
		if overdue, err := strconv.ParseBool(c.Query("overdue")); err == nil {
			filter.Overdue = &overdue
		}
	}

	return filter
}

func decodeUpdateTaskBody(c *gin.Context) (dto.UpdateTaskRequest, map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return dto.UpdateTaskRequest{}, nil, err
	}

	// An empty body is an empty update, not a malformed one.
	if len(bytes.TrimSpace(body)) == 0 {
		return dto.UpdateTaskRequest{}, map[string]json.RawMessage{}, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return dto.UpdateTaskRequest{}, nil, err
	}

	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return dto.UpdateTaskRequest{}, nil, err
	}

	return req, raw, nil
}
