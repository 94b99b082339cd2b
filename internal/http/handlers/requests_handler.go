// Archive HTTP handlers.
//
// This file exposes read-only endpoints over the optional ticket archive:
//   - GET /requests                  (list archived service requests, paginated)
//   - GET /requests/{ticket}        (fetch one request by ticket number)
//   - GET /surveys                  (list completed feedback surveys)
//
// When the archive is disabled (no DB_PATH configured), the endpoints answer
// 503 with a stable error code so clients can distinguish "off" from "empty".
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/repo"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/utils"
)

// RequestStore defines the archive queries consumed by HTTP handlers.
//
// Implementations must be safe for concurrent use and honor the provided
// context.
type RequestStore interface {
	CountRequests(ctx context.Context, requestType domain.RequestType) (int64, error)
	ListRequestsPage(ctx context.Context, requestType domain.RequestType, offset, limit int) ([]domain.ServiceRequest, error)
	GetRequestByTicket(ctx context.Context, ticket string) (*domain.ServiceRequest, error)
	ListSurveys(ctx context.Context, ticket string) ([]domain.FeedbackSurvey, error)
}

// RequestHandlers serves the archive endpoints. A nil store means the archive
// is disabled.
type RequestHandlers struct {
	store RequestStore
}

// NewRequestHandlers binds the endpoints to an archive store (nil disables).
func NewRequestHandlers(store RequestStore) *RequestHandlers {
	return &RequestHandlers{store: store}
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListRequestsResponse wraps a page of archived requests.
type ListRequestsResponse struct {
	Requests   []domain.ServiceRequest `json:"requests"`
	Pagination Pagination              `json:"pagination"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

func (h *RequestHandlers) disabled(c *gin.Context) bool {
	if h.store == nil {
		fail(c, http.StatusServiceUnavailable, ErrCodeArchiveDisabled, "request archive is disabled")
		return true
	}
	return false
}

// ListRequests returns a page of archived service requests, optionally
// filtered by ?type=.
func (h *RequestHandlers) ListRequests(c *gin.Context) {
	if h.disabled(c) {
		return
	}
	ctx := c.Request.Context()
	page, pageSize := clampPagination(c)

	requestType := domain.RequestType(strings.TrimSpace(c.Query("type")))
	switch requestType {
	case "", domain.RequestInstallation, domain.RequestDeinstallation,
		domain.RequestReactivation, domain.RequestMaintenance:
	default:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown request type")
		return
	}

	total, err := h.store.CountRequests(ctx, requestType)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	items, err := h.store.ListRequestsPage(ctx, requestType, (page-1)*pageSize, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListRequestsResponse{
		Requests: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// ListSurveysResponse wraps the archived feedback surveys.
type ListSurveysResponse struct {
	Surveys []domain.FeedbackSurvey `json:"surveys"`
}

// ListSurveys returns completed feedback surveys, newest first, optionally
// filtered by ?ticket=.
func (h *RequestHandlers) ListSurveys(c *gin.Context) {
	if h.disabled(c) {
		return
	}
	ticket := strings.TrimSpace(c.Query("ticket"))
	surveys, err := h.store.ListSurveys(c.Request.Context(), ticket)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListSurveysResponse{Surveys: surveys})
}

// GetRequest fetches one archived request by ticket number.
func (h *RequestHandlers) GetRequest(c *gin.Context) {
	if h.disabled(c) {
		return
	}
	ticket := strings.TrimSpace(c.Param("ticket"))
	if ticket == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "ticket required")
		return
	}
	req, err := h.store.GetRequestByTicket(c.Request.Context(), ticket)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "ticket not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, req)
}
