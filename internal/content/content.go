// Package content supplies the immutable lookup data driving the POS Buddy
// conversation: menu option lists, the FAQ table, feedback questions, time
// slots, and every scripted prompt string. Tables exist per language and are
// selected through golang.org/x/text language matching; all lookups are pure
// functions of static data.
package content

import (
	"golang.org/x/text/language"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
)

// FeedbackQuestion is one entry of the post-installation survey. The
// PositiveDetail line is shown together with the coin award when the answer
// is "yes".
type FeedbackQuestion struct {
	Key            string
	Question       string
	PositiveDetail string
}

// Prompts groups every scripted string emitted by the dialogue controller.
// Format verbs are documented next to the fields that carry them.
type Prompts struct {
	Greeting     string
	SelectOption string
	AnythingElse string

	FAQIntro string
	FAQMore  string
	Fallback string

	InstallationStart    string
	MerchantRetry        string
	MerchantLookupFailed string
	MerchantSummary      string // business, address, contact, mobile

	OTPSent      string // code
	OTPPrompt    string
	OTPIncorrect string
	OTPResent    string // code
	OTPSuccess   string

	APOSFeatures    string
	ClassicFeatures string
	SlotPrompt      string // human-readable date

	InstallConfirm string // ticket, engineer, date, time, engineer mobile

	FeedbackOffer      string
	FeedbackCoinEarned string
	FeedbackSummary    string // coins, score
	TextFeedbackPrompt string
	TextFeedbackThanks string // bonus coins
	CommentsPrompt     string
	CommentsThanks     string // bonus coins, total, comments
	InstallSkipClose   string

	FormIntro     string // request type label
	FormConfirm   string // label, ticket, contact name, contact mobile, date, time
	FormCancelled string

	LanguageChanged string

	PlaceholderMerchantID string
	PlaceholderOTP        string
	PlaceholderFeedback   string
	PlaceholderOption     string
	PlaceholderDefault    string
}

// Table is the complete content set for one language. Tables are built once
// at startup and never mutated; option slices returned from methods are fresh
// copies, so callers may hand them to sessions freely.
type Table struct {
	Lang              language.Tag
	BotName           string
	MainMenu          []domain.Option
	FAQ               []domain.FAQItem
	FeedbackQuestions []FeedbackQuestion
	InstallTimeSlots  []string
	FormTimeSlots     []string
	RequestTypeLabels map[domain.RequestType]string
	YesNo             []domain.Option
	POSTypes          []domain.Option
	FeedbackOffer     []domain.Option
	Prompts           Prompts

	byID map[string]domain.Option
}

// finish builds the id lookup used by Localize. Called once per table at
// construction.
func (t *Table) finish() {
	t.byID = make(map[string]domain.Option)
	for _, set := range [][]domain.Option{t.MainMenu, t.YesNo, t.POSTypes, t.FeedbackOffer, t.FAQMenu()} {
		for _, o := range set {
			t.byID[o.ID] = o
		}
	}
}

// FAQMenu derives the FAQ menu option list from the FAQ table: one option per
// record, labelled with its question, valued with the question text so the
// keyword matcher resolves it on selection.
func (t Table) FAQMenu() []domain.Option {
	out := make([]domain.Option, 0, len(t.FAQ))
	for _, item := range t.FAQ {
		out = append(out, domain.Option{ID: "faq-" + item.Keywords[0], Label: item.Question, Value: item.Question})
	}
	return out
}

// InstallSlotOptions returns the fixed installation time slots as options.
func (t Table) InstallSlotOptions() []domain.Option {
	out := make([]domain.Option, 0, len(t.InstallTimeSlots))
	for _, s := range t.InstallTimeSlots {
		out = append(out, domain.Option{ID: "slot-" + s, Label: s, Value: s})
	}
	return out
}

// Localize re-renders an option set in this table's language, matching by
// option id. Options without a translation (time slots, POS type values) are
// returned unchanged; their values are language-independent.
func (t Table) Localize(opts []domain.Option) []domain.Option {
	out := make([]domain.Option, len(opts))
	for i, o := range opts {
		if tr, ok := t.byID[o.ID]; ok {
			out[i] = tr
			continue
		}
		out[i] = o
	}
	return out
}

// Store holds one Table per supported language and resolves requested
// language codes to the best supported match.
type Store struct {
	tables  []Table
	tags    []language.Tag
	matcher language.Matcher
}

// NewStore builds the store with every supported language table. The first
// table (English) is the fallback for unmatched codes.
func NewStore() *Store {
	tables := []Table{englishTable(), spanishTable()}
	tags := make([]language.Tag, len(tables))
	for i := range tables {
		tables[i].finish()
		tags[i] = tables[i].Lang
	}
	return &Store{
		tables:  tables,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}
}

// Default returns the fallback (English) table.
func (s *Store) Default() Table { return s.tables[0] }

// Table returns the table registered for exactly the given tag, or the
// default table when no exact entry exists.
func (s *Store) Table(tag language.Tag) Table {
	for _, t := range s.tables {
		if t.Lang == tag {
			return t
		}
	}
	return s.Default()
}

// Match resolves a BCP 47 language code ("en", "es-MX", …) to the best
// supported table's tag. Unparseable codes resolve to the default language.
func (s *Store) Match(code string) language.Tag {
	desired, err := language.Parse(code)
	if err != nil {
		return s.tags[0]
	}
	_, idx, _ := s.matcher.Match(desired)
	return s.tags[idx]
}

// Supported reports whether code parses and matches a registered table with
// reasonable confidence.
func (s *Store) Supported(code string) bool {
	desired, err := language.Parse(code)
	if err != nil {
		return false
	}
	_, _, conf := s.matcher.Match(desired)
	return conf >= language.High
}
