package http

import (
	"chat-vault/auth"
	"chat-vault/domain"
	"chat-vault/domain/event"
	"chat-vault/errors"
	"chat-vault/services"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	chat     services.IChatService
	typing   Typer
	profiles services.IProfileService
	streamer Streamer
	log      *slog.Logger
}

func NewChatHandler(deps Dependencies, log *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chat:     deps.Chat,
		typing:   deps.Typing,
		profiles: deps.Profiles,
		streamer: deps.Streamer,
		log:      log,
	}
}

type TypingRequest struct {
	IsTyping bool `json:"isTyping"`
}

type ProfileRequest struct {
	DisplayName string `json:"displayName" binding:"required"`
}

func (h *ChatHandler) CreateConversation(c *gin.Context) {
	actor := mustActor(c)
	var cmd domain.CreateConversationCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondError(c, h.log, invalidPayload(err))
		return
	}
	cmd.InitiatorID = actor.ID

	conversation, created, err := h.chat.CreateOrGetConversation(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, conversation)
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	conversations, err := h.chat.ListConversations(c.Request.Context(), mustActor(c).ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

func (h *ChatHandler) UpdateSettings(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var settings domain.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondError(c, h.log, invalidPayload(err))
		return
	}
	conversation, err := h.chat.UpdateSettings(c.Request.Context(), domain.UpdateSettingsCommand{
		ConversationID: id,
		ActorID:        mustActor(c).ID,
		Settings:       settings,
	})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, conversation)
}

func (h *ChatHandler) DeactivateConversation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	conversation, err := h.chat.DeactivateConversation(c.Request.Context(), id, mustActor(c).ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, conversation)
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var cmd domain.SendMessageCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondError(c, h.log, invalidPayload(err))
		return
	}
	// The sender is always the authenticated caller
	cmd.ConversationID = id
	cmd.SenderID = mustActor(c).ID

	view, err := h.chat.SendMessage(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	query := domain.GetMessagesQuery{ConversationID: id}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, h.log, errors.ErrInvalidPageSize)
			return
		}
		query.Limit = limit
	}
	var err error
	if query.Before, err = parseTime(c.Query("before")); err != nil {
		respondError(c, h.log, invalidPayload(err))
		return
	}
	if query.After, err = parseTime(c.Query("after")); err != nil {
		respondError(c, h.log, invalidPayload(err))
		return
	}

	views, err := h.chat.GetMessages(c.Request.Context(), mustActor(c), query)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ChatHandler) GetMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	view, err := h.chat.GetMessage(c.Request.Context(), mustActor(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ChatHandler) EditMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var cmd domain.EditMessageCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondError(c, h.log, invalidPayload(err))
		return
	}
	cmd.MessageID = id
	cmd.EditorID = mustActor(c).ID

	view, err := h.chat.EditMessage(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	view, err := h.chat.DeleteMessage(c.Request.Context(), id, mustActor(c).ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ChatHandler) MarkRead(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	receipt, err := h.chat.MarkMessageRead(c.Request.Context(), id, mustActor(c).ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *ChatHandler) SetTyping(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var body TypingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, invalidPayload(err))
		return
	}
	if err := h.typing.SetTyping(c.Request.Context(), id, mustActor(c).ID, body.IsTyping); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *ChatHandler) GetProfile(c *gin.Context) {
	user, err := h.profiles.GetProfile(mustActor(c).ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ChatHandler) SaveProfile(c *gin.Context) {
	var body ProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, h.log, invalidPayload(err))
		return
	}
	user, err := h.profiles.SaveProfile(mustActor(c).ID, body.DisplayName)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// StreamConversation attaches the caller to the live events of a conversation.
func (h *ChatHandler) StreamConversation(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	actor := mustActor(c)
	if _, err := h.chat.AuthorizeParticipant(c.Request.Context(), id, actor.ID); err != nil {
		respondError(c, h.log, err)
		return
	}
	h.streamer.Stream(c.Writer, c.Request, actor.ID, []string{event.ConversationTopic(id)})
}

// StreamUser attaches the caller to its personal channel.
func (h *ChatHandler) StreamUser(c *gin.Context) {
	actor := mustActor(c)
	h.streamer.Stream(c.Writer, c.Request, actor.ID, []string{event.UserTopic(actor.ID)})
}

func (h *ChatHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.log, invalidPayload(err))
		return uuid.Nil, false
	}
	return id, true
}

// mustActor reads the actor set by the authentication middleware.
func mustActor(c *gin.Context) domain.Actor {
	actor, _ := auth.ActorFromContext(c.Request.Context())
	return actor
}

func parseTime(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
