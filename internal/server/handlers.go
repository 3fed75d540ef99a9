// internal/server/handlers.go
package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zone-platform/internal/chat/gateway"
	apperrors "zone-platform/internal/common/errors"
	"zone-platform/internal/models"
)

// ==========================
// Health / Catalog
// ==========================

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": s.catalog.Categories(),
		"questions":  s.catalog.Questions(),
	})
}

// ==========================
// Raw Generation Proxy
// ==========================

type chatProxyRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"`
}

// handleChatProxy forwards a prepared prompt to the upstream model. Failures
// surface as HTTP errors here; the session send path owns the friendly
// fallbacks.
func (s *Server) handleChatProxy(c *gin.Context) {
	var req chatProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		s.respondError(c, apperrors.NewPromptRequiredError())
		return
	}

	text, err := s.gateway.GenerateRaw(c.Request.Context(), req.Prompt, req.Model)
	if err != nil {
		if errors.Is(err, gateway.ErrGenerationTimeout) {
			s.respondError(c, apperrors.NewGenerationTimeoutError())
		} else {
			s.respondError(c, apperrors.NewGenerationFailedError(err))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// ==========================
// Chat Sessions
// ==========================

func (s *Server) handleChatSnapshot(c *gin.Context) {
	snap := s.chat.Get(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, snap)
}

type chatSendRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleChatSend(c *gin.Context) {
	var req chatSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.NewPromptRequiredError())
		return
	}

	msg, err := s.chat.Send(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (s *Server) handleChatMessages(c *gin.Context) {
	snap := s.chat.Get(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"messages": snap.Messages})
}

func (s *Server) handleChatClear(c *gin.Context) {
	if err := s.chat.Clear(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type chatZoneRequest struct {
	ZoneID string `json:"zoneId"`
}

func (s *Server) handleChatZone(c *gin.Context) {
	var req chatZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}

	snap, err := s.chat.SetActiveZone(c.Request.Context(), c.Param("id"), req.ZoneID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type chatPositionRequest struct {
	X        int             `json:"x"`
	Y        int             `json:"y"`
	Viewport models.Viewport `json:"viewport"`
}

func (s *Server) handleChatPosition(c *gin.Context) {
	var req chatPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}

	pos, err := s.chat.SetPosition(c.Request.Context(), c.Param("id"),
		models.ChatPosition{X: req.X, Y: req.Y}, req.Viewport)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}

type chatOpenRequest struct {
	Open *bool `json:"open" binding:"required"`
}

func (s *Server) handleChatOpen(c *gin.Context) {
	var req chatOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, err)
		return
	}

	snap, err := s.chat.SetOpen(c.Request.Context(), c.Param("id"), *req.Open)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ==========================
// Interviews
// ==========================

func (s *Server) handleInterviewStart(c *gin.Context) {
	c.JSON(http.StatusCreated, s.interviews.Start())
}

func (s *Server) handleInterviewGet(c *gin.Context) {
	snap, err := s.interviews.Get(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type interviewAnswerRequest struct {
	OptionID string `json:"optionId"`
}

func (s *Server) handleInterviewAnswer(c *gin.Context) {
	var req interviewAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, apperrors.NewInvalidAnswerError(""))
		return
	}

	snap, err := s.interviews.Select(c.Param("id"), req.OptionID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleInterviewBack(c *gin.Context) {
	snap, err := s.interviews.Back(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleInterviewRestart(c *gin.Context) {
	snap, err := s.interviews.Restart(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleInterviewResult(c *gin.Context) {
	result, err := s.interviews.Result(c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
