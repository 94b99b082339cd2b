// Session HTTP handlers.
//
// This file exposes REST endpoints for conversation sessions:
//   - POST   /sessions                  (create)
//   - GET    /sessions/{id}            (session view snapshot)
//   - POST   /sessions/{id}/messages   (submit free text)
//   - POST   /sessions/{id}/options    (select an offered option)
//   - POST   /sessions/{id}/form       (submit the service request form)
//   - DELETE /sessions/{id}/form       (cancel the form)
//   - POST   /sessions/{id}/skip       (skip the current bonus prompt)
//   - POST   /sessions/{id}/restart    (full restart)
//   - PUT    /sessions/{id}/language   (switch the content language)
//   - DELETE /sessions/{id}            (end the session)
//
// Handlers are transport-thin: they validate input, call the dialogue
// controller, and translate sentinel errors into HTTP responses. Bot replies
// are paced server-side, so submission endpoints return the immediate view;
// clients poll GET /sessions/{id} (pending_replies > 0) for the staggered
// follow-ups.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/dialog"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
)

//
// Handler wiring
//

// SessionHandlers groups the conversation endpoints around one session
// manager.
type SessionHandlers struct {
	mgr *dialog.Manager
}

// NewSessionHandlers binds the endpoints to a session manager.
func NewSessionHandlers(mgr *dialog.Manager) *SessionHandlers {
	return &SessionHandlers{mgr: mgr}
}

//
// DTOs
//

// CreateSessionRequest is the JSON payload for creating a session.
type CreateSessionRequest struct {
	// Language optionally selects the content language (BCP 47 code).
	Language string `json:"language" example:"es"`
}

// SessionResponse wraps a session id and its current view.
type SessionResponse struct {
	SessionID string      `json:"session_id"`
	View      dialog.View `json:"view"`
}

// SubmitTextRequest is the JSON payload for a free-text submission.
type SubmitTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// SelectOptionRequest is the JSON payload for selecting an option.
type SelectOptionRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

// SubmitFormRequest is the JSON payload of the service request form.
type SubmitFormRequest struct {
	MerchantID    string `json:"merchant_id" binding:"required"`
	MerchantName  string `json:"merchant_name"`
	ContactName   string `json:"contact_name" binding:"required"`
	ContactMobile string `json:"contact_mobile" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required"`
	Comments      string `json:"comments"`
}

// ChangeLanguageRequest is the JSON payload for a language switch.
type ChangeLanguageRequest struct {
	Code string `json:"code" binding:"required"`
}

//
// Helpers
//

// session resolves the :id path parameter to a live controller, writing the
// error response itself on failure.
func (h *SessionHandlers) session(c *gin.Context) (*dialog.Controller, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "session id must be a UUID")
		return nil, false
	}
	ctrl, err := h.mgr.Get(id)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		return nil, false
	}
	return ctrl, true
}

// failDialog translates dialogue sentinel errors into the HTTP taxonomy.
func failDialog(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dialog.ErrSessionNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
	case errors.Is(err, dialog.ErrTurnInProgress):
		fail(c, http.StatusConflict, ErrCodeTurnInProgress, "previous replies still pending")
	case errors.Is(err, dialog.ErrNoOptionsActive),
		errors.Is(err, dialog.ErrNoFormActive),
		errors.Is(err, dialog.ErrInputDisabled):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, dialog.ErrEmptyInput),
		errors.Is(err, dialog.ErrUnknownOption),
		errors.Is(err, dialog.ErrIncompleteForm),
		errors.Is(err, dialog.ErrUnknownLanguage):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Handlers
//

// CreateSession starts a new conversation and returns its id and first view.
func (h *SessionHandlers) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
			return
		}
	}

	id, ctrl, err := h.mgr.Create(c.Request.Context(), strings.TrimSpace(req.Language))
	if err != nil {
		if errors.Is(err, dialog.ErrUnknownLanguage) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unsupported language")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, SessionResponse{SessionID: id, View: ctrl.Snapshot()})
}

// GetSession returns the current view snapshot.
func (h *SessionHandlers) GetSession(c *gin.Context) {
	ctrl, okSess := h.session(c)
	if !okSess {
		return
	}
	ok(c, http.StatusOK, SessionResponse{SessionID: c.Param("id"), View: ctrl.Snapshot()})
}

// SubmitText handles a free-text submission.
func (h *SessionHandlers) SubmitText(c *gin.Context) {
	ctrl, okSess := h.session(c)
	if !okSess {
		return
	}
	var req SubmitTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text required")
		return
	}
	if err := ctrl.SubmitFreeText(c.Request.Context(), req.Text); err != nil {
		failDialog(c, err)
		return
	}
	ok(c, http.StatusAccepted, SessionResponse{SessionID: c.Param("id"), View: ctrl.Snapshot()})
}

// SelectOption handles selection of an offered option.
func (h *SessionHandlers) SelectOption(c *gin.Context) {
	ctrl, okSess := h.session(c)
	if !okSess {
		return
	}
	var req SelectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "option_id required")
		return
	}
	if err := ctrl.SelectOption(c.Request.Context(), req.OptionID); err != nil {
		failDialog(c, err)
		return
	}
	ok(c, http.StatusAccepted, SessionResponse{SessionID: c.Param("id"), View: ctrl.Snapshot()})
}

// SubmitForm accepts the completed service request form.
func (h *SessionHandlers) SubmitForm(c *gin.Context) {
	ctrl, okSess := h.session(c)
	if !okSess {
		return
	}
	var req SubmitFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "incomplete form payload")
		return
	}
	form := domain.ServiceRequest{
		MerchantID:    strings.TrimSpace(req.MerchantID),
		MerchantName:  strings.TrimSpace(req.MerchantName),
		ContactName:   strings.TrimSpace(req.ContactName),
		ContactMobile: strings.TrimSpace(req.ContactMobile),
		PreferredDate: strings.TrimSpace(req.PreferredDate),
		PreferredTime: strings.TrimSpace(req.PreferredTime),
		Comments:      strings.TrimSpace(req.Comments),
	}
	if err := ctrl.SubmitForm(c.Request.Context(), form); err != nil {
		failDialog(c, err)
		return
	}
	ok(c, http.StatusAccepted, SessionResponse{SessionID: c.Param("id"), View: ctrl.Snapshot()})
}

// CancelForm closes the open form without submitting.
func (h *SessionHandlers) CancelForm(c *gin.Context) {
	ctrl, okSess := h.session(c)
	if !okSess {
		return
	}
	if err := ctrl.CancelForm(c.Request.Context()); err != nil {
		failDialog(c, err)
		return
	}
	ok(c, http.StatusOK, SessionResponse{SessionID: c.Param("id"), View: ctrl.Snapshot()})
}

// Skip bypasses the current bonus prompt.
func (h *SessionHandlers) Skip(c *gin.Context) {
	ctrl, okSess := h.session(c)
	if !okSess {
		return
	}
	if err := ctrl.Skip(c.Request.Context()); err != nil {
		failDialog(c, err)
		return
	}
	ok(c, http.StatusAccepted, SessionResponse{SessionID: c.Param("id"), View: ctrl.Snapshot()})
}

// Restart resets the session wholesale.
func (h *SessionHandlers) Restart(c *gin.Context) {
	ctrl, okSess := h.session(c)
	if !okSess {
		return
	}
	ctrl.Restart(c.Request.Context())
	ok(c, http.StatusOK, SessionResponse{SessionID: c.Param("id"), View: ctrl.Snapshot()})
}

// ChangeLanguage switches the session's content language.
func (h *SessionHandlers) ChangeLanguage(c *gin.Context) {
	ctrl, okSess := h.session(c)
	if !okSess {
		return
	}
	var req ChangeLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "code required")
		return
	}
	if err := ctrl.ChangeLanguage(c.Request.Context(), strings.TrimSpace(req.Code)); err != nil {
		failDialog(c, err)
		return
	}
	ok(c, http.StatusOK, SessionResponse{SessionID: c.Param("id"), View: ctrl.Snapshot()})
}

// DeleteSession ends the session and cancels its pending replies.
func (h *SessionHandlers) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "session id must be a UUID")
		return
	}
	if err := h.mgr.Delete(id); err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "session not found")
		return
	}
	noContent(c)
}
