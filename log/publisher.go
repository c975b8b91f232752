package log

import (
	"sync"
	"sync/atomic"
)

const defaultBufferSize = 64

// Publisher is an [io.Writer] that fans out written bytes to subscribers.
//
// Each call to [Publisher.Write] copies the input once and delivers it to
// every active [Subscription] via a buffered channel. When a subscriber's
// channel is full the oldest entry is dropped, so Write never blocks.
//
// With [WithHistory], the most recent entries are also retained and replayed
// to each new subscriber, so records logged before a view subscribed are not
// lost. Safe for concurrent use.
//
// Create instances with [NewPublisher].
type Publisher struct {
	subscribers []*Subscription
	history     [][]byte
	bufSize     int
	historySize int
	mu          sync.Mutex
	closed      bool
}

// NewPublisher creates a [Publisher] with the given options.
// The default buffer size is 64 and no history is kept.
func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PublisherOption configures a [Publisher].
type PublisherOption func(*Publisher)

// WithBufferSize sets the channel buffer size for new subscriptions.
// Values less than 1 are clamped to 1.
func WithBufferSize(n int) PublisherOption {
	return func(p *Publisher) {
		if n < 1 {
			n = 1
		}

		p.bufSize = n
	}
}

// WithHistory keeps the n most recent entries for replay to new
// subscribers. Values less than 1 disable history.
func WithHistory(n int) PublisherOption {
	return func(p *Publisher) {
		if n < 0 {
			n = 0
		}

		p.historySize = n
	}
}

// Write copies b and sends the copy to all active subscribers, dropping a
// subscriber's oldest entry when its channel is full. Closed subscriptions
// are compacted out. Write always returns len(b), nil.
func (p *Publisher) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return len(b), nil
	}

	entry := make([]byte, len(b))
	copy(entry, b)

	p.remember(entry)

	alive := p.subscribers[:0]
	for _, sub := range p.subscribers {
		if sub.closed.Load() {
			close(sub.ch)
			continue
		}

		sub.send(entry)

		alive = append(alive, sub)
	}
	// Clear trailing references for GC.
	for i := len(alive); i < len(p.subscribers); i++ {
		p.subscribers[i] = nil
	}

	p.subscribers = alive

	return len(b), nil
}

func (p *Publisher) remember(entry []byte) {
	if p.historySize == 0 {
		return
	}

	if len(p.history) == p.historySize {
		copy(p.history, p.history[1:])
		p.history = p.history[:len(p.history)-1]
	}

	p.history = append(p.history, entry)
}

// History returns the retained entries, oldest first.
func (p *Publisher) History() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([][]byte, len(p.history))
	copy(out, p.history)

	return out
}

// Subscribe creates and registers a new [Subscription], preloaded with the
// retained history. If the Publisher is already closed the returned
// subscription's channel is immediately closed.
func (p *Publisher) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := &Subscription{
		ch: make(chan []byte, p.bufSize),
	}

	if p.closed {
		close(sub.ch)
		return sub
	}

	for _, entry := range p.history {
		sub.send(entry)
	}

	p.subscribers = append(p.subscribers, sub)

	return sub
}

// Close marks the Publisher as closed, closes all subscription channels,
// and releases the subscriber list and history. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.closed = true
	for _, sub := range p.subscribers {
		close(sub.ch)
	}

	p.subscribers = nil
	p.history = nil

	return nil
}

// Subscription receives log entries from a [Publisher].
type Subscription struct {
	ch     chan []byte
	closed atomic.Bool
}

// send delivers entry, dropping the oldest buffered entry when full. Callers
// hold the publisher's lock, so there is no competing sender.
func (s *Subscription) send(entry []byte) {
	select {
	case s.ch <- entry:
	default:
		select {
		case <-s.ch:
		default:
		}

		s.ch <- entry
	}
}

// C returns the read-only channel that delivers log entries.
// Callers must not modify the returned byte slices.
func (s *Subscription) C() <-chan []byte {
	return s.ch
}

// Close marks the subscription as closed. The Publisher will close the
// underlying channel on its next Write or Close call. Idempotent.
func (s *Subscription) Close() {
	s.closed.Store(true)
}
