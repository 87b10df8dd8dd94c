package refresh

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"artistdesk/internal/api"
	"artistdesk/internal/cache"
	"artistdesk/internal/model"
)

// State represents the current state of the background refresher.
type State int

const (
	Idle State = iota
	Running
	Failed
)

// Status describes the refresher for the status bar.
type Status struct {
	State       State
	LastRefresh time.Time
	Error       error
}

// ResultMsg is a tea.Msg sent when a background refresh completes. A
// failed refresh carries the error and leaves the previous data on
// screen.
type ResultMsg struct {
	ArtistID  int
	Dashboard model.Dashboard
	Roster    []model.Artist
	Error     error
}

// fetchTimeout is the maximum time allowed for a single refresh cycle.
const fetchTimeout = 30 * time.Second

// Refresher periodically re-fetches the roster and the selected
// artist's dashboard, writing fresh snapshots to the cache and feeding
// results back to the UI over a channel.
type Refresher struct {
	client   *api.Client
	cache    cache.Cache
	logger   *zap.Logger
	interval time.Duration

	resultCh  chan ResultMsg
	triggerCh chan int
	stopCh    chan struct{}

	mu       sync.Mutex
	status   Status
	artistID int
	running  bool
}

// New creates a Refresher. The cache may be nil, in which case results
// are only delivered to the UI. Interval at or below zero disables the
// timer; manual triggers still work.
func New(client *api.Client, c cache.Cache, interval time.Duration, logger *zap.Logger) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{
		client:    client,
		cache:     c,
		logger:    logger,
		interval:  interval,
		resultCh:  make(chan ResultMsg, 16),
		triggerCh: make(chan int, 16),
		stopCh:    make(chan struct{}),
	}
}

// SetArtist changes which artist's dashboard gets refreshed.
func (r *Refresher) SetArtist(id int) {
	r.mu.Lock()
	r.artistID = id
	r.mu.Unlock()
}

// Start launches the refresh loop and returns a tea.Cmd that waits on
// the result channel. Calling Start twice is a no-op.
func (r *Refresher) Start() tea.Cmd {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.mu.Unlock()

	go r.loop()

	return r.waitForResult()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	close(r.stopCh)
	r.running = false
}

// Trigger requests an immediate refresh of the given artist without
// waiting for the timer. A zero id refreshes the roster only.
func (r *Refresher) Trigger(artistID int) tea.Cmd {
	select {
	case r.triggerCh <- artistID:
	default:
		// Channel full; a refresh is already queued.
	}
	return nil
}

// GetStatus returns the current refresher status.
func (r *Refresher) GetStatus() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Refresher) loop() {
	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-r.stopCh:
			return
		case <-tick:
			r.mu.Lock()
			id := r.artistID
			r.mu.Unlock()
			r.refresh(id)
		case id := <-r.triggerCh:
			r.refresh(id)
		}
	}
}

// refresh performs one fetch cycle and sends the outcome on the result
// channel. The roster is always refreshed; the dashboard only when an
// artist is selected.
func (r *Refresher) refresh(artistID int) {
	r.setState(Running, nil)

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	roster, err := r.client.Artists(ctx)
	if err != nil {
		r.logger.Warn("roster refresh failed", zap.Error(err))
		r.setState(Failed, err)
		r.sendResult(ResultMsg{ArtistID: artistID, Error: err})
		return
	}
	if r.cache != nil {
		if cacheErr := r.cache.SaveRoster(ctx, roster); cacheErr != nil {
			r.logger.Warn("caching roster failed", zap.Error(cacheErr))
		}
	}

	msg := ResultMsg{ArtistID: artistID, Roster: roster}

	if artistID > 0 {
		dash, err := r.client.Dashboard(ctx, artistID)
		if err != nil {
			r.logger.Warn("dashboard refresh failed",
				zap.Int("artistId", artistID), zap.Error(err))
			r.setState(Failed, err)
			r.sendResult(ResultMsg{ArtistID: artistID, Roster: roster, Error: err})
			return
		}
		msg.Dashboard = dash
		if r.cache != nil {
			if cacheErr := r.cache.SaveDashboard(ctx, artistID, dash); cacheErr != nil {
				r.logger.Warn("caching dashboard failed",
					zap.Int("artistId", artistID), zap.Error(cacheErr))
			}
		}
	}

	r.setState(Idle, nil)
	r.sendResult(msg)
}

func (r *Refresher) setState(state State, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.status.State = state
	r.status.Error = err
	if state == Idle && err == nil {
		r.status.LastRefresh = time.Now()
	}
}

// sendResult sends a ResultMsg on the result channel without blocking.
func (r *Refresher) sendResult(msg ResultMsg) {
	select {
	case r.resultCh <- msg:
	default:
		// Drop if channel is full to avoid blocking the loop.
	}
}

// waitForResult returns a tea.Cmd that waits for the next result from
// the result channel.
func (r *Refresher) waitForResult() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-r.resultCh
		if !ok {
			return nil
		}
		return result
	}
}

// WaitForNextResult returns a tea.Cmd that waits for the next refresh
// result. This should be called after processing a ResultMsg to keep
// listening.
func (r *Refresher) WaitForNextResult() tea.Cmd {
	return r.waitForResult()
}
