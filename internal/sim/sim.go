// Package sim implements the simulated merchant backend: OTP generation,
// ticket and serial number formatting, merchant directory lookups, and the
// service engineer roster. All values are fabricated deterministically from a
// seeded source so conversations are reproducible in tests.
package sim

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/prabhakardwi/merchant-pos-buddy/internal/domain"
)

// Engineer identifies a service engineer that can be assigned to an
// installation visit.
type Engineer struct {
	Name   string
	Mobile string
}

var engineers = []Engineer{
	{Name: "Alex Smith", Mobile: "+1-555-0181"},
	{Name: "Jamie Johnson", Mobile: "+1-555-0145"},
	{Name: "Chris Wilson", Mobile: "+1-555-0163"},
	{Name: "Taylor Brown", Mobile: "+1-555-0127"},
	{Name: "Jordan Lee", Mobile: "+1-555-0192"},
}

var streets = []string{
	"12 Market Street",
	"48 Commerce Avenue",
	"7 Harbor Road",
	"230 Main Street",
	"91 Station Plaza",
}

// Simulator fabricates backend responses. It is safe for concurrent use; the
// mutex guards the shared random source.
type Simulator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Simulator seeded from the given value. Seed 0 selects a
// time-based seed for production use; tests pass a fixed seed for
// reproducible values.
func New(seed int64) *Simulator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{rnd: rand.New(rand.NewSource(seed))}
}

func (s *Simulator) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// GenerateOTP returns a fresh 4-digit one-time password in [1000, 9999].
func (s *Simulator) GenerateOTP() string {
	return fmt.Sprintf("%04d", 1000+s.intn(9000))
}

// TicketNumber formats a new service ticket number: "SR" + yymmdd + four
// random digits. Ticket numbers are not guaranteed globally unique; the
// archive enforces uniqueness on insert.
func (s *Simulator) TicketNumber(now time.Time) string {
	return fmt.Sprintf("SR%s%04d", now.Format("060102"), s.intn(10000))
}

// SerialNumber fabricates a device serial for deinstallation and maintenance
// tickets.
func (s *Simulator) SerialNumber() string {
	return fmt.Sprintf("SN-%04d", s.intn(10000))
}

// PickEngineer assigns a random engineer from the roster.
func (s *Simulator) PickEngineer() Engineer {
	return engineers[s.intn(len(engineers))]
}

// LookupMerchant resolves a merchant id against the simulated directory. Every
// non-empty id resolves; the returned record is derived from the id so repeat
// lookups for the same merchant look consistent to the user. The context is
// accepted for interface compatibility with a real directory client.
func (s *Simulator) LookupMerchant(ctx context.Context, id string) (domain.MerchantInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.MerchantInfo{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.MerchantInfo{}, fmt.Errorf("lookup merchant: empty id")
	}
	prefix := strings.ToUpper(id)
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return domain.MerchantInfo{
		ID:            id,
		BusinessName:  fmt.Sprintf("Merchant %s Store", prefix),
		Address:       streets[s.intn(len(streets))],
		ContactName:   fmt.Sprintf("John %s", prefix),
		ContactMobile: fmt.Sprintf("+1-555-%04d", s.intn(10000)),
	}, nil
}
