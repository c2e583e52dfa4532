package playback

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/huffviz/huffman"
	"go.uber.org/zap"
)

// DefaultInterval is the auto-advance delay between two steps.
const DefaultInterval = 1200 * time.Millisecond

var (
	// ErrNilSequence is returned by NewPlayer for a nil sequence.
	ErrNilSequence = errors.New("playback: sequence is nil")

	// ErrIndexOutOfRange is returned by Seek for indices outside [0, Len).
	ErrIndexOutOfRange = errors.New("playback: index out of range")

	// ErrAlreadyPlaying is returned by Play while another Play is running.
	ErrAlreadyPlaying = errors.New("playback: already playing")
)

// Option configures a Player.
type Option func(*Player)

// WithInterval sets the auto-advance delay. Panics on non-positive values.
func WithInterval(d time.Duration) Option {
	if d <= 0 {
		panic("playback: WithInterval(<=0)")
	}
	return func(p *Player) {
		p.interval = d
	}
}

// WithLogger attaches a logger; navigation is logged at debug level.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("playback: WithLogger(nil)")
	}
	return func(p *Player) {
		p.log = l
	}
}

// Player holds a cursor into a sequence.
type Player struct {
	seq      *huffman.Sequence
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	index   int
	playing bool
}

// NewPlayer returns a Player positioned on step 0.
func NewPlayer(seq *huffman.Sequence, opts ...Option) (*Player, error) {
	if seq == nil {
		return nil, ErrNilSequence
	}
	p := &Player{seq: seq, interval: DefaultInterval, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Len returns the length of the underlying sequence.
func (p *Player) Len() int { return p.seq.Len() }

// Interval returns the auto-advance delay.
func (p *Player) Interval() time.Duration { return p.interval }

// Index returns the current position.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index
}

// Current returns a copy of the step under the cursor.
func (p *Player) Current() huffman.Step {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stepLocked()
}

func (p *Player) stepLocked() huffman.Step {
	// index is always within bounds, At cannot fail here.
	s, _ := p.seq.At(p.index)
	return s
}

// Done reports whether the cursor is on the last step.
func (p *Player) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index == p.seq.Len()-1
}

// Playing reports whether Play is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Next advances one step. It returns false, leaving the cursor in place, on
// the last step.
func (p *Player) Next() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moveLocked(p.index + 1)
}

// Prev goes back one step. It returns false on the first step.
func (p *Player) Prev() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.moveLocked(p.index - 1)
}

// Reset rewinds to step 0.
func (p *Player) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.moveLocked(0)
}

// Seek moves to step i.
func (p *Player) Seek(i int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= p.seq.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "seek to %d, length %d", i, p.seq.Len())
	}
	p.moveLocked(i)
	return nil
}

// JumpTo moves to the first step of phase ph. It returns false and stays put
// when the sequence has no such step (e.g. SELECTION for a single symbol).
func (p *Player) JumpTo(ph huffman.Phase) bool {
	i := p.seq.IndexOf(ph)
	if i < 0 {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.moveLocked(i)
	return true
}

func (p *Player) moveLocked(i int) bool {
	if i < 0 || i >= p.seq.Len() {
		return false
	}
	if i != p.index {
		p.log.Debug("move", zap.Int("from", p.index), zap.Int("to", i))
	}
	p.index = i
	return true
}

// Play advances one step per interval and hands every newly reached step to
// fn. It returns nil once the last step has been delivered (or immediately if
// the cursor is already there), ctx.Err() when ctx is cancelled, or the first
// error returned by fn. The cursor stays wherever playback stopped, so a later
// Play resumes from there.
func (p *Player) Play(ctx context.Context, fn func(i int, s huffman.Step) error) error {
	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return ErrAlreadyPlaying
	}
	p.playing = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.playing = false
		p.mu.Unlock()
	}()

	p.log.Debug("play", zap.Int("from", p.Index()), zap.Duration("interval", p.interval))
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		if p.Done() {
			p.log.Debug("playback finished")
			return nil
		}
		select {
		case <-ctx.Done():
			p.log.Debug("playback paused", zap.Int("at", p.Index()))
			return ctx.Err()
		case <-ticker.C:
		}

		p.mu.Lock()
		if !p.moveLocked(p.index + 1) {
			p.mu.Unlock()
			return nil
		}
		i, s := p.index, p.stepLocked()
		p.mu.Unlock()

		if fn != nil {
			if err := fn(i, s); err != nil {
				return errors.Wrapf(err, "playback: step %d", i)
			}
		}
	}
}
