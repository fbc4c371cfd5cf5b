package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/pantheon-service/internal/api/dto"
	"github.com/spec-kit/pantheon-service/internal/auth"
	"github.com/spec-kit/pantheon-service/internal/service"
	apperrors "github.com/spec-kit/pantheon-service/pkg/util"
)

// ChatHandler manages 1:1 chat sessions and their messages.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chatService}
}

// CreateSession POST /chat/sessions.
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	var req dto.ChatSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	session, err := h.chat.CreateSession(c.Context(), principal.UserID, req.PeerID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewChatSessionResponse(session)})
}

// ListSessions GET /chat/sessions.
func (h *ChatHandler) ListSessions(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	sessions, err := h.chat.ListSessions(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	out := make([]dto.ChatSessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, dto.NewChatSessionResponse(&sessions[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// DeleteSession DELETE /chat/sessions/:id.
func (h *ChatHandler) DeleteSession(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	sessionID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	if err := h.chat.DeleteSession(c.Context(), principal.UserID, sessionID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Session de chat supprimée avec succès"})
}

// SendMessage POST /chat/sessions/:id/messages.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	sessionID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	message, err := h.chat.SendMessage(c.Context(), principal.UserID, sessionID, req.Message)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewChatMessageResponse(message)})
}

// ListMessages GET /chat/sessions/:id/messages.
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	sessionID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	messages, err := h.chat.ListMessages(c.Context(), principal.UserID, sessionID)
	if err != nil {
		return err
	}
	out := make([]dto.ChatMessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, dto.NewChatMessageResponse(&messages[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// ModifyMessage PUT /chat/sessions/:id/messages/:messageID. Author only.
func (h *ChatHandler) ModifyMessage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	sessionID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	messageID, err := parseParamID(c, "messageID")
	if err != nil {
		return err
	}
	var req dto.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Données invalides", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Données invalides", dto.ValidationDetails(err))
	}
	message, err := h.chat.ModifyMessage(c.Context(), principal.UserID, sessionID, messageID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewChatMessageResponse(message)})
}

// DeleteMessage DELETE /chat/sessions/:id/messages/:messageID. Author only.
func (h *ChatHandler) DeleteMessage(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Access denied. Cookie missing.")
	}
	sessionID, err := parseParamID(c, "id")
	if err != nil {
		return err
	}
	messageID, err := parseParamID(c, "messageID")
	if err != nil {
		return err
	}
	if err := h.chat.DeleteMessage(c.Context(), principal.UserID, sessionID, messageID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Message supprimé avec succès"})
}
