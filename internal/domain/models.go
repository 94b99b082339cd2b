// Package domain defines the data model for the POS Buddy conversational
// service: chat messages, interactive options, service request drafts, and
// feedback surveys. ServiceRequest and FeedbackSurvey are additionally mapped
// with GORM for the optional submitted-request archive.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// MessageRole identifies the author of a chat message.
type MessageRole string

// Message authors. System messages are styled differently by presentation
// layers (confirmations, coin summaries) but carry no special semantics in
// the controller.
const (
	RoleBot    MessageRole = "bot"
	RoleUser   MessageRole = "user"
	RoleSystem MessageRole = "system"
)

// Message is a single entry of the append-only conversation log. Messages are
// immutable once appended; insertion order is display order.
//
// Fields:
//   - ID: opaque UUID assigned by the log on append.
//   - Role: bot, user, or system.
//   - Content: displayable text (may span multiple lines).
//   - CoinAwarded: marks entries that carry a Service Coin award, so the
//     presentation layer can render the coin badge next to them.
//   - CreatedAt: append timestamp.
type Message struct {
	ID          string      `json:"id"`
	Role        MessageRole `json:"role"`
	Content     string      `json:"content"`
	CoinAwarded bool        `json:"coin_awarded"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Option is one interactive choice offered to the user. The active option set
// is replaced wholesale whenever the controller offers a new choice.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// RequestType enumerates the supported service request workflows.
type RequestType string

// Service request workflows. Installation is conversational (multi-step);
// the other three are collected atomically through the service request form.
const (
	RequestInstallation   RequestType = "installation"
	RequestDeinstallation RequestType = "deinstallation"
	RequestReactivation   RequestType = "reactivation"
	RequestMaintenance    RequestType = "maintenance"
)

// POSType enumerates the device variants offered during installation.
type POSType string

// Device variants.
const (
	POSAdvanced POSType = "APOS"
	POSClassic  POSType = "ClassicPOS"
)

// MerchantInfo is the record returned by a merchant directory lookup. The
// reference backend fabricates it; a production directory returns the same
// shape.
type MerchantInfo struct {
	ID            string `json:"id"`
	BusinessName  string `json:"business_name"`
	Address       string `json:"address"`
	ContactName   string `json:"contact_name"`
	ContactMobile string `json:"contact_mobile"`
}

// FAQItem is one entry of the static FAQ table. A free-text query matches the
// item when the text contains any of its keywords (case-insensitive).
type FAQItem struct {
	Keywords []string `json:"keywords"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
}

// ServiceRequest is a service ticket built up by the installation flow or
// handed over complete by the service request form. Finalized requests (ticket
// number assigned) may be written to the archive.
//
// GORM mapping is used only by the archive; the dialogue controller treats
// this as a plain draft struct.
type ServiceRequest struct {
	ID             string         `json:"id"              gorm:"type:char(36);primaryKey"`
	RequestType    RequestType    `json:"request_type"    gorm:"type:varchar(32);not null;index"`
	MerchantID     string         `json:"merchant_id"     gorm:"type:varchar(64);not null;index"`
	MerchantName   string         `json:"merchant_name"   gorm:"type:varchar(255)"`
	ContactName    string         `json:"contact_name"    gorm:"type:varchar(255)"`
	ContactMobile  string         `json:"contact_mobile"  gorm:"type:varchar(32)"`
	POSType        POSType        `json:"pos_type,omitempty" gorm:"type:varchar(16)"`
	PreferredDate  string         `json:"preferred_date"  gorm:"type:varchar(64)"`
	PreferredTime  string         `json:"preferred_time"  gorm:"type:varchar(32)"`
	SerialNumber   string         `json:"serial_number"   gorm:"type:varchar(32)"`
	TicketNumber   string         `json:"ticket_number"   gorm:"type:varchar(16);uniqueIndex"`
	EngineerName   string         `json:"engineer_name,omitempty"   gorm:"type:varchar(255)"`
	EngineerMobile string         `json:"engineer_mobile,omitempty" gorm:"type:varchar(32)"`
	Comments       string         `json:"comments,omitempty" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for ServiceRequest.
func (ServiceRequest) TableName() string { return "service_requests" }

// FeedbackRecord accumulates one post-installation survey in memory: yes/no
// answers keyed by question key, plus the optional free-text fields.
type FeedbackRecord struct {
	Answers      map[string]bool `json:"answers"`
	TextFeedback string          `json:"text_feedback,omitempty"`
	Comments     string          `json:"comments,omitempty"`
}

// NewFeedbackRecord returns an empty record ready to collect answers.
func NewFeedbackRecord() FeedbackRecord {
	return FeedbackRecord{Answers: make(map[string]bool)}
}

// PositiveCount returns the number of "yes" answers recorded so far.
func (r FeedbackRecord) PositiveCount() int {
	n := 0
	for _, v := range r.Answers {
		if v {
			n++
		}
	}
	return n
}

// FeedbackSurvey is the archived form of a completed FeedbackRecord, tied to
// the installation ticket it rates.
type FeedbackSurvey struct {
	ID              string         `json:"id"               gorm:"type:char(36);primaryKey"`
	TicketNumber    string         `json:"ticket_number"    gorm:"type:varchar(16);not null;index"`
	PositiveAnswers int            `json:"positive_answers" gorm:"not null"`
	Score           int            `json:"score"            gorm:"not null;check:score BETWEEN 0 AND 100"`
	CoinsEarned     int            `json:"coins_earned"     gorm:"not null"`
	TextFeedback    string         `json:"text_feedback,omitempty" gorm:"type:text"`
	Comments        string         `json:"comments,omitempty"      gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the database table name for FeedbackSurvey.
func (FeedbackSurvey) TableName() string { return "feedback_surveys" }
