// Package repo implements the optional archive of submitted service requests
// and completed feedback surveys. This file provides the Archive type the
// dialogue controller writes through and the query helpers the HTTP layer
// reads through.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving conversation rules to the dialog package.
//
// Error semantics:
//   - Duplicate ticket numbers rely on the database unique constraint and
//     are returned as raw DB errors.
//   - Missing records are reported as ErrNotFound.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// Archive persists finalized service requests and completed surveys. It
// satisfies the dialog package's Archive interface.
type Archive struct {
	DB *gorm.DB
}

// NewArchive wraps an open database handle.
func NewArchive(db *gorm.DB) *Archive { return &Archive{DB: db} }

// SaveRequest inserts a finalized service request. The ticket number must be
// unique, enforced by the schema.
func (a *Archive) SaveRequest(ctx context.Context, req *domain.ServiceRequest) error {
	now := time.Now().UTC()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now
	return a.DB.WithContext(ctx).Create(req).Error
}

// SaveSurvey inserts a completed feedback survey.
func (a *Archive) SaveSurvey(ctx context.Context, survey *domain.FeedbackSurvey) error {
	now := time.Now().UTC()
	if survey.CreatedAt.IsZero() {
		survey.CreatedAt = now
	}
	survey.UpdatedAt = now
	return a.DB.WithContext(ctx).Create(survey).Error
}

// CountRequests returns the total number of archived requests, optionally
// filtered by request type ("" counts all).
func (a *Archive) CountRequests(ctx context.Context, requestType domain.RequestType) (int64, error) {
	q := a.DB.WithContext(ctx).Model(&domain.ServiceRequest{})
	if requestType != "" {
		q = q.Where("request_type = ?", requestType)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// ListRequestsPage returns one page of archived requests ordered by creation
// time descending. Use CountRequests to obtain the total for pagination
// metadata.
func (a *Archive) ListRequestsPage(ctx context.Context, requestType domain.RequestType, offset, limit int) ([]domain.ServiceRequest, error) {
	q := a.DB.WithContext(ctx).Model(&domain.ServiceRequest{})
	if requestType != "" {
		q = q.Where("request_type = ?", requestType)
	}
	var out []domain.ServiceRequest
	err := q.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetRequestByTicket fetches one archived request by its ticket number, or
// ErrNotFound if it does not exist.
func (a *Archive) GetRequestByTicket(ctx context.Context, ticket string) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	err := a.DB.WithContext(ctx).
		Where("ticket_number = ?", ticket).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListSurveys returns archived surveys for a ticket ("" lists all), newest
// first.
func (a *Archive) ListSurveys(ctx context.Context, ticket string) ([]domain.FeedbackSurvey, error) {
	q := a.DB.WithContext(ctx).Model(&domain.FeedbackSurvey{})
	if ticket != "" {
		q = q.Where("ticket_number = ?", ticket)
	}
	var out []domain.FeedbackSurvey
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}
