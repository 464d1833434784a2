package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for conversation-related handlers. Every
// route behind it requires authentication.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRoom opens a conversation including the authenticated user.
func (h *ChatHandler) CreateRoom(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.CreateRoomInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid room input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateRoom(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Chat room created successfully")
}

// ListRooms returns the authenticated user's conversations.
func (h *ChatHandler) ListRooms(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListRooms(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Chat rooms retrieved successfully")
}

// GetRoom returns a conversation the authenticated user belongs to.
func (h *ChatHandler) GetRoom(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	roomID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GetRoom(c.Request().Context(), userID, roomID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Chat room retrieved successfully")
}

// ListMessages returns the conversation's messages in chronological order.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	roomID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListMessages(c.Request().Context(), userID, roomID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Messages retrieved successfully")
}

// SendMessage posts a message into a conversation.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	roomID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.SendMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SendMessage(c.Request().Context(), userID, roomID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Message sent successfully")
}
