// Package dialog implements the scripted conversation engine for POS Buddy:
// a finite-state dialogue controller over a fixed step vocabulary, an
// append-only message log, staggered delayed bot replies, and the service
// coin accrual rules of the feedback survey.
//
// Each session owns exactly one Controller. All state mutation is serialized
// by the controller mutex; deferred replies are tagged with a session
// generation counter so callbacks scheduled before a restart can never touch
// the reset session.
package dialog

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/content"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/sched"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/search"
	"github.com/prabhakardwi/merchant-pos-buddy/internal/sim"
)

const tracerName = "dialog/Controller"

// Coin awards of the feedback flow.
const (
	coinsPerYesAnswer = 1
	coinsTextFeedback = 5
	coinsComments     = 3
)

// Pacing holds the scripted reply delays. They are cosmetic pacing, not
// timeouts: a cancelled delay emits nothing and changes no state.
type Pacing struct {
	Short time.Duration // FAQ and retry pacing
	Step  time.Duration // most step transitions
	Long  time.Duration // longer multi-message sequences
}

// DefaultPacing is tuned to read like a human agent typing.
func DefaultPacing() Pacing {
	return Pacing{
		Short: 500 * time.Millisecond,
		Step:  time.Second,
		Long:  2 * time.Second,
	}
}

// Backend is the simulated (or real) merchant service the controller calls
// into. *sim.Simulator satisfies it.
type Backend interface {
	GenerateOTP() string
	TicketNumber(now time.Time) string
	SerialNumber() string
	PickEngineer() sim.Engineer
	LookupMerchant(ctx context.Context, id string) (domain.MerchantInfo, error)
}

// Archive receives finalized service requests and completed feedback surveys.
// A nil Archive disables archiving; archive failures never surface into the
// conversation.
type Archive interface {
	SaveRequest(ctx context.Context, req *domain.ServiceRequest) error
	SaveSurvey(ctx context.Context, survey *domain.FeedbackSurvey) error
}

// View is the read-only projection of session state handed to presentation
// layers.
type View struct {
	Messages        []domain.Message   `json:"messages"`
	Options         []domain.Option    `json:"options"`
	ShowOptions     bool               `json:"show_options"`
	InputEnabled    bool               `json:"input_enabled"`
	Placeholder     string             `json:"placeholder"`
	Coins           int                `json:"coins"`
	Step            Step               `json:"step"`
	ShowForm        bool               `json:"show_form"`
	FormRequestType domain.RequestType `json:"form_request_type,omitempty"`
	FormTimeSlots   []string           `json:"form_time_slots,omitempty"`
	PendingReplies  int                `json:"pending_replies"`
	Language        string             `json:"language"`
}

// Config wires a Controller's collaborators.
type Config struct {
	Content   *content.Store
	Backend   Backend
	Scheduler sched.Scheduler
	Archive   Archive // optional
	Logger    zerolog.Logger
	Pacing    Pacing
	Clock     func() time.Time // optional; defaults to time.Now
	Language  language.Tag     // zero value selects the default table
}

// Controller is the dialogue state machine of one session. All exported
// methods are safe for concurrent use.
type Controller struct {
	store   *content.Store
	backend Backend
	sch     sched.Scheduler
	archive Archive
	log     zerolog.Logger
	pacing  Pacing
	clock   func() time.Time

	mu         sync.Mutex
	table      content.Table
	matcher    *search.Matcher
	generation uint64
	pending    int

	step        Step
	feedbackIdx int
	draft       domain.ServiceRequest
	feedback    domain.FeedbackRecord
	coins       int
	otp         string

	messages    *MessageLog
	options     []domain.Option
	showOptions bool

	activeForm domain.RequestType
	showForm   bool
}

// NewController builds a controller in the idle step with an empty log. Call
// Start to emit the greeting and offer the main menu.
func NewController(cfg Config) *Controller {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	table := cfg.Content.Table(cfg.Language)
	return &Controller{
		store:    cfg.Content,
		backend:  cfg.Backend,
		sch:      cfg.Scheduler,
		archive:  cfg.Archive,
		log:      cfg.Logger,
		pacing:   cfg.Pacing,
		clock:    clock,
		table:    table,
		matcher:  search.NewMatcher(table.FAQ),
		step:     StepIdle,
		feedback: domain.NewFeedbackRecord(),
		messages: NewMessageLog(clock),
	}
}

// Start resets the session and begins the conversation: the greeting is
// appended immediately, the main menu is offered one pacing step later.
func (c *Controller) Start(ctx context.Context) {
	_, span := otel.Tracer(tracerName).Start(ctx, "Start")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.restartLocked()
}

// Restart discards the whole session: log, step, draft, feedback, coins, OTP,
// options, and any open form. Pending deferred replies are invalidated by the
// generation bump. The greeting and main menu follow as on Start.
func (c *Controller) Restart(ctx context.Context) {
	_, span := otel.Tracer(tracerName).Start(ctx, "Restart")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.restartLocked()
}

func (c *Controller) restartLocked() {
	c.generation++
	c.pending = 0
	c.step = StepIdle
	c.feedbackIdx = 0
	c.draft = domain.ServiceRequest{}
	c.feedback = domain.NewFeedbackRecord()
	c.coins = 0
	c.otp = ""
	c.options = nil
	c.showOptions = false
	c.activeForm = ""
	c.showForm = false
	c.messages.Reset()

	c.appendBot(c.table.Prompts.Greeting)
	c.schedule(c.pacing.Step, func() {
		c.offerMainMenu("")
	})
	c.log.Debug().Uint64("generation", c.generation).Msg("session restarted")
}

// Close invalidates every pending deferred reply. The controller is not
// usable afterwards for new scheduling until Start is called again.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.pending = 0
}

// SubmitFreeText handles a free-text submission. Steps that expect options
// fall through to FAQ matching against the raw input.
func (c *Controller) SubmitFreeText(ctx context.Context, text string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "SubmitFreeText")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending > 0 {
		return ErrTurnInProgress
	}
	if c.showForm {
		return ErrInputDisabled
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyInput
	}
	span.SetAttributes(attribute.String("dialog.step", string(c.step)))

	c.appendUser(text)
	c.showOptions = false

	switch c.step {
	case StepMerchantID:
		c.handleMerchantID(ctx, text)
	case StepOTP:
		c.handleOTP(text)
	case StepTextFeedback:
		c.handleTextFeedback(text)
	case StepComments:
		c.handleComments(ctx, text)
	default:
		// Option steps and idle: answer from the FAQ table or fall back.
		c.handleFreeQuery(text)
	}
	return nil
}

// SelectOption handles selection of one of the currently offered options.
func (c *Controller) SelectOption(ctx context.Context, optionID string) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "SelectOption",
		trace.WithAttributes(attribute.String("option.id", optionID)),
	)
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending > 0 {
		return ErrTurnInProgress
	}
	if !c.showOptions {
		return ErrNoOptionsActive
	}
	var opt domain.Option
	found := false
	for _, o := range c.options {
		if o.ID == optionID {
			opt, found = o, true
			break
		}
	}
	if !found {
		return ErrUnknownOption
	}
	span.SetAttributes(attribute.String("dialog.step", string(c.step)))

	c.appendUser(opt.Label)
	c.options = nil
	c.showOptions = false

	switch c.step {
	case StepIdle:
		c.handleIdleOption(opt)
	case StepConfirm:
		c.handleConfirmOption(opt)
	case StepPOSType:
		c.handlePOSTypeOption(opt)
	case StepTimeSlot:
		c.handleTimeSlotOption(ctx, opt)
	case StepFeedback:
		c.handleFeedbackOption(opt)
	default:
		return ErrUnknownOption
	}
	return nil
}

// SubmitForm accepts a completed service request form for the active
// single-form workflow (deinstallation, reactivation, maintenance). The
// controller assigns id, serial, and ticket number.
func (c *Controller) SubmitForm(ctx context.Context, form domain.ServiceRequest) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "SubmitForm")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending > 0 {
		return ErrTurnInProgress
	}
	if !c.showForm {
		return ErrNoFormActive
	}
	if strings.TrimSpace(form.MerchantID) == "" ||
		strings.TrimSpace(form.ContactName) == "" ||
		strings.TrimSpace(form.ContactMobile) == "" ||
		strings.TrimSpace(form.PreferredDate) == "" ||
		strings.TrimSpace(form.PreferredTime) == "" {
		return ErrIncompleteForm
	}

	now := c.clock()
	req := form
	req.ID = uuid.NewString()
	req.RequestType = c.activeForm
	req.SerialNumber = c.backend.SerialNumber()
	req.TicketNumber = c.backend.TicketNumber(now)
	req.CreatedAt = now
	req.UpdatedAt = now

	label := c.table.RequestTypeLabels[c.activeForm]
	c.appendUser(fmt.Sprintf("%s: %s", label, req.MerchantID))
	c.showForm = false
	c.activeForm = ""

	c.schedule(c.pacing.Step, func() {
		c.saveRequest(ctx, req)
		c.appendSystem(fmt.Sprintf(c.table.Prompts.FormConfirm,
			label, req.TicketNumber, req.ContactName, req.ContactMobile,
			req.PreferredDate, req.PreferredTime), false)
	})
	c.schedule(c.pacing.Step+c.pacing.Long, func() {
		c.offerMainMenu(c.table.Prompts.AnythingElse)
	})
	return nil
}

// CancelForm closes the open service request form without submitting.
func (c *Controller) CancelForm(ctx context.Context) error {
	_, span := otel.Tracer(tracerName).Start(ctx, "CancelForm")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.showForm {
		return ErrNoFormActive
	}
	c.showForm = false
	c.activeForm = ""
	c.schedule(c.pacing.Short, func() {
		c.offerMainMenu(c.table.Prompts.FormCancelled)
	})
	return nil
}

// Skip bypasses the current free-text bonus prompt (textFeedback or comments)
// without awarding coins and returns to the main menu.
func (c *Controller) Skip(ctx context.Context) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Skip")
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending > 0 {
		return ErrTurnInProgress
	}
	if c.step != StepTextFeedback && c.step != StepComments {
		return ErrInputDisabled
	}
	c.finishSurvey(ctx)
	c.step = StepIdle
	c.schedule(c.pacing.Step, func() {
		c.offerMainMenu(c.table.Prompts.AnythingElse)
	})
	return nil
}

// ChangeLanguage switches the active content table. Conversation state is
// preserved: the log keeps its history, future messages use the new table,
// and the active option set is re-rendered by option id.
func (c *Controller) ChangeLanguage(ctx context.Context, code string) error {
	_, span := otel.Tracer(tracerName).Start(ctx, "ChangeLanguage",
		trace.WithAttributes(attribute.String("language.code", code)),
	)
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.store.Supported(code) {
		return ErrUnknownLanguage
	}
	tag := c.store.Match(code)
	if tag == c.table.Lang {
		return nil
	}
	c.table = c.store.Table(tag)
	c.matcher = search.NewMatcher(c.table.FAQ)
	c.options = c.table.Localize(c.options)
	c.appendBot(c.table.Prompts.LanguageChanged)
	c.log.Debug().Str("language", tag.String()).Msg("language switched")
	return nil
}

// Snapshot returns the presentation view of the current session state.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	opts := make([]domain.Option, len(c.options))
	copy(opts, c.options)

	v := View{
		Messages:       c.messages.Messages(),
		Options:        opts,
		ShowOptions:    c.showOptions && c.pending == 0,
		InputEnabled:   c.pending == 0 && !c.showForm,
		Placeholder:    c.placeholderLocked(),
		Coins:          c.coins,
		Step:           c.step,
		ShowForm:       c.showForm,
		PendingReplies: c.pending,
		Language:       c.table.Lang.String(),
	}
	if c.showForm {
		v.FormRequestType = c.activeForm
		v.FormTimeSlots = append([]string(nil), c.table.FormTimeSlots...)
	}
	return v
}

// ---------- step handlers ----------

func (c *Controller) handleIdleOption(opt domain.Option) {
	switch opt.ID {
	case "installation":
		c.step = StepMerchantID
		c.draft = domain.ServiceRequest{}
		c.schedule(c.pacing.Step, func() {
			c.appendBot(c.table.Prompts.InstallationStart)
		})
	case "deinstallation", "reactivation", "maintenance":
		c.activeForm = domain.RequestType(opt.Value)
		c.showForm = true
		label := c.table.RequestTypeLabels[c.activeForm]
		c.schedule(c.pacing.Step, func() {
			c.appendBot(fmt.Sprintf(c.table.Prompts.FormIntro, label))
		})
	case "faq":
		c.schedule(c.pacing.Short, func() {
			c.appendBot(c.table.Prompts.FAQIntro)
			c.options = c.table.FAQMenu()
			c.showOptions = true
		})
	case "yes-feedback":
		c.step = StepFeedback
		c.feedbackIdx = 0
		c.feedback = domain.NewFeedbackRecord()
		c.coins = 0
		c.schedule(c.pacing.Step, func() {
			c.askFeedbackQuestion()
		})
	case "skip-feedback":
		c.draft = domain.ServiceRequest{}
		c.schedule(c.pacing.Step, func() {
			c.offerMainMenu(c.table.Prompts.InstallSkipClose)
		})
	default:
		if strings.HasPrefix(opt.ID, "faq-") {
			c.handleFreeQuery(opt.Value)
			return
		}
		// Unknown idle option: treat as a free query, the fallback path
		// re-offers the menu.
		c.handleFreeQuery(opt.Value)
	}
}

func (c *Controller) handleMerchantID(ctx context.Context, text string) {
	info, err := c.backend.LookupMerchant(ctx, text)
	if err != nil {
		c.log.Warn().Err(err).Msg("merchant lookup failed")
		c.schedule(c.pacing.Step, func() {
			c.appendBot(c.table.Prompts.MerchantLookupFailed)
		})
		return
	}
	c.draft.MerchantID = info.ID
	c.draft.MerchantName = info.BusinessName
	c.draft.ContactName = info.ContactName
	c.draft.ContactMobile = info.ContactMobile
	c.step = StepConfirm
	c.schedule(c.pacing.Step, func() {
		c.appendBot(fmt.Sprintf(c.table.Prompts.MerchantSummary,
			info.BusinessName, info.Address, info.ContactName, info.ContactMobile))
		c.options = c.table.YesNo
		c.showOptions = true
	})
}

func (c *Controller) handleConfirmOption(opt domain.Option) {
	switch opt.Value {
	case "yes":
		c.otp = c.backend.GenerateOTP()
		c.step = StepOTP
		otp := c.otp
		c.schedule(c.pacing.Step, func() {
			c.appendBot(fmt.Sprintf(c.table.Prompts.OTPSent, otp))
		})
		c.schedule(c.pacing.Step+c.pacing.Step, func() {
			c.appendBot(c.table.Prompts.OTPPrompt)
		})
	default:
		c.draft = domain.ServiceRequest{}
		c.step = StepMerchantID
		c.schedule(c.pacing.Step, func() {
			c.appendBot(c.table.Prompts.MerchantRetry)
		})
	}
}

func (c *Controller) handleOTP(text string) {
	if text == c.otp {
		c.otp = ""
		c.step = StepPOSType
		c.schedule(c.pacing.Step, func() {
			c.appendBot(c.table.Prompts.OTPSuccess)
			c.options = c.table.POSTypes
			c.showOptions = true
		})
		return
	}
	// Mismatch: retryable indefinitely, fresh code each attempt.
	c.otp = c.backend.GenerateOTP()
	otp := c.otp
	c.schedule(c.pacing.Short, func() {
		c.appendBot(c.table.Prompts.OTPIncorrect)
	})
	c.schedule(c.pacing.Short+c.pacing.Step, func() {
		c.appendBot(fmt.Sprintf(c.table.Prompts.OTPResent, otp))
	})
}

func (c *Controller) handlePOSTypeOption(opt domain.Option) {
	c.draft.POSType = domain.POSType(opt.Value)
	features := c.table.Prompts.ClassicFeatures
	if c.draft.POSType == domain.POSAdvanced {
		features = c.table.Prompts.APOSFeatures
	}
	c.step = StepTimeSlot
	tomorrow := c.clock().Add(24 * time.Hour).Format("Monday, January 2, 2006")
	c.draft.PreferredDate = tomorrow
	c.schedule(c.pacing.Step, func() {
		c.appendBot(features)
	})
	c.schedule(c.pacing.Step+c.pacing.Long, func() {
		c.appendBot(fmt.Sprintf(c.table.Prompts.SlotPrompt, tomorrow))
		c.options = c.table.InstallSlotOptions()
		c.showOptions = true
	})
}

func (c *Controller) handleTimeSlotOption(ctx context.Context, opt domain.Option) {
	now := c.clock()
	engineer := c.backend.PickEngineer()
	c.draft.PreferredTime = opt.Value
	c.draft.EngineerName = engineer.Name
	c.draft.EngineerMobile = engineer.Mobile
	c.draft.TicketNumber = c.backend.TicketNumber(now)
	c.draft.ID = uuid.NewString()
	c.draft.RequestType = domain.RequestInstallation
	c.draft.CreatedAt = now
	c.draft.UpdatedAt = now
	c.step = StepIdle

	req := c.draft
	c.schedule(c.pacing.Step, func() {
		c.saveRequest(ctx, req)
		c.appendSystem(fmt.Sprintf(c.table.Prompts.InstallConfirm,
			req.TicketNumber, req.EngineerName, req.PreferredDate,
			req.PreferredTime, req.EngineerMobile), false)
	})
	c.schedule(c.pacing.Step+c.pacing.Long, func() {
		c.appendBot(c.table.Prompts.FeedbackOffer)
		c.options = c.table.FeedbackOffer
		c.showOptions = true
	})
}

func (c *Controller) handleFeedbackOption(opt domain.Option) {
	questions := c.table.FeedbackQuestions
	if c.feedbackIdx >= len(questions) {
		c.step = StepTextFeedback
		return
	}
	q := questions[c.feedbackIdx]
	yes := opt.Value == "yes"
	c.feedback.Answers[q.Key] = yes

	next := c.pacing.Step
	if yes {
		c.coins += coinsPerYesAnswer
		detail := q.PositiveDetail
		c.schedule(c.pacing.Short, func() {
			c.appendCoin(detail + "\n" + c.table.Prompts.FeedbackCoinEarned)
		})
		next = c.pacing.Short + c.pacing.Step
	}

	c.feedbackIdx++
	if c.feedbackIdx < len(questions) {
		c.schedule(next, func() {
			c.askFeedbackQuestion()
		})
		return
	}

	// Survey complete: summary, then the free-text bonus prompt.
	positives := c.feedback.PositiveCount()
	score := int(math.Round(float64(positives) / float64(len(questions)) * 100))
	c.coins = positives
	c.step = StepTextFeedback
	c.schedule(next, func() {
		c.appendSystem(fmt.Sprintf(c.table.Prompts.FeedbackSummary, positives, score), true)
	})
	c.schedule(next+c.pacing.Long, func() {
		c.appendBot(c.table.Prompts.TextFeedbackPrompt)
	})
}

func (c *Controller) handleTextFeedback(text string) {
	c.feedback.TextFeedback = text
	c.coins += coinsTextFeedback
	c.step = StepComments
	c.schedule(c.pacing.Step, func() {
		c.appendSystem(fmt.Sprintf(c.table.Prompts.TextFeedbackThanks, coinsTextFeedback), true)
	})
	c.schedule(c.pacing.Step+c.pacing.Long, func() {
		c.appendBot(c.table.Prompts.CommentsPrompt)
	})
}

func (c *Controller) handleComments(ctx context.Context, text string) {
	c.feedback.Comments = text
	c.coins += coinsComments
	c.step = StepIdle
	total := c.coins
	c.schedule(c.pacing.Step, func() {
		c.finishSurvey(ctx)
		c.appendSystem(fmt.Sprintf(c.table.Prompts.CommentsThanks, coinsComments, total, text), true)
	})
	c.schedule(c.pacing.Step+c.pacing.Long, func() {
		c.offerMainMenu(c.table.Prompts.AnythingElse)
	})
}

func (c *Controller) handleFreeQuery(text string) {
	c.step = StepIdle
	if item, ok := c.matcher.Match(text); ok {
		answer := item.Answer
		c.schedule(c.pacing.Short, func() {
			c.appendBot(answer)
		})
		c.schedule(c.pacing.Short+c.pacing.Step, func() {
			c.offerMainMenu(c.table.Prompts.FAQMore)
		})
		return
	}
	c.schedule(c.pacing.Short, func() {
		c.offerMainMenu(c.table.Prompts.Fallback)
	})
}

// ---------- helpers (all require c.mu held) ----------

// schedule registers a deferred effect tagged with the current generation.
// Stale callbacks (generation bumped by restart or close) are dropped without
// touching session state.
func (c *Controller) schedule(d time.Duration, fn func()) {
	gen := c.generation
	c.pending++
	c.sch.After(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.generation {
			return
		}
		c.pending--
		fn()
	})
}

func (c *Controller) offerMainMenu(prompt string) {
	if prompt != "" {
		c.appendBot(prompt)
	} else {
		c.appendBot(c.table.Prompts.SelectOption)
	}
	c.options = c.table.MainMenu
	c.showOptions = true
}

func (c *Controller) askFeedbackQuestion() {
	q := c.table.FeedbackQuestions[c.feedbackIdx]
	c.appendBot(q.Question)
	c.options = c.table.YesNo
	c.showOptions = true
}

func (c *Controller) appendBot(content string) {
	c.messages.Append(domain.RoleBot, content, false)
}

func (c *Controller) appendCoin(content string) {
	c.messages.Append(domain.RoleBot, content, true)
}

func (c *Controller) appendUser(content string) {
	c.messages.Append(domain.RoleUser, content, false)
}

func (c *Controller) appendSystem(content string, coin bool) {
	c.messages.Append(domain.RoleSystem, content, coin)
}

func (c *Controller) saveRequest(ctx context.Context, req domain.ServiceRequest) {
	if c.archive == nil {
		return
	}
	// Runs from deferred callbacks after the originating request finished;
	// the write must not die with that request's context.
	ctx = context.WithoutCancel(ctx)
	if err := c.archive.SaveRequest(ctx, &req); err != nil {
		c.log.Error().Err(err).Str("ticket", req.TicketNumber).Msg("archive request failed")
	}
}

// finishSurvey archives the completed feedback record. Called once the flow
// leaves the survey for good (comments submitted, or skipped).
func (c *Controller) finishSurvey(ctx context.Context) {
	if c.archive == nil || len(c.feedback.Answers) == 0 {
		return
	}
	questions := len(c.table.FeedbackQuestions)
	positives := c.feedback.PositiveCount()
	survey := domain.FeedbackSurvey{
		ID:              uuid.NewString(),
		TicketNumber:    c.draft.TicketNumber,
		PositiveAnswers: positives,
		Score:           int(math.Round(float64(positives) / float64(questions) * 100)),
		CoinsEarned:     c.coins,
		TextFeedback:    c.feedback.TextFeedback,
		Comments:        c.feedback.Comments,
	}
	if err := c.archive.SaveSurvey(context.WithoutCancel(ctx), &survey); err != nil {
		c.log.Error().Err(err).Str("ticket", survey.TicketNumber).Msg("archive survey failed")
	}
	c.feedback = domain.NewFeedbackRecord()
	c.draft = domain.ServiceRequest{}
}

func (c *Controller) placeholderLocked() string {
	p := c.table.Prompts
	switch {
	case c.showForm:
		return p.PlaceholderDefault
	case c.step == StepMerchantID:
		return p.PlaceholderMerchantID
	case c.step == StepOTP:
		return p.PlaceholderOTP
	case c.step == StepTextFeedback || c.step == StepComments:
		return p.PlaceholderFeedback
	case c.showOptions:
		return p.PlaceholderOption
	default:
		return p.PlaceholderDefault
	}
}
