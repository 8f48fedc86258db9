// Package sound provides the decorative answer feedback sounds.
package sound

import (
	"io"
	"log/slog"
	"sync"
)

// Player plays answer feedback. Calls are fire-and-forget.
type Player interface {
	PlayCorrect()
	PlayWrong()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) PlayCorrect() {}
func (Nop) PlayWrong()   {}

const bel = "\a"

// Bell rings the terminal bell: once for a correct answer, twice for a
// wrong one.
type Bell struct {
	mu  sync.Mutex
	w   io.Writer
	log *slog.Logger
}

// NewBell returns a Bell writing to w. A nil logger discards write errors.
func NewBell(w io.Writer, logger *slog.Logger) *Bell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bell{w: w, log: logger}
}

func (b *Bell) PlayCorrect() { b.ring(1) }
func (b *Bell) PlayWrong()   { b.ring(2) }

func (b *Bell) ring(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for range n {
		if _, err := io.WriteString(b.w, bel); err != nil {
			b.log.Warn("terminal bell failed", "err", err)
			return
		}
	}
}

var (
	_ Player = Nop{}
	_ Player = (*Bell)(nil)
)
