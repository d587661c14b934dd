package reminder

import (
	"context"
	"ecoalerta/internal/core"
	"log/slog"
	"sync"
	"time"
)

// ProfileLoader provides the saved resident configuration
type ProfileLoader interface {
	Load(ctx context.Context) *core.UserConfig
}

// Reminder describes an upcoming collection that falls inside the eve window
type Reminder struct {
	Neighborhood   string
	Label          string
	At             time.Time
	HoursRemaining int
	DurationText   string
	DateText       string
}

// Notifier delivers eve reminders
type Notifier interface {
	NotifyEve(ctx context.Context, r Reminder) error
}

// Options configures how reminders are rendered
type Options struct {
	Interval time.Duration
	Language core.Language
	Location *time.Location
}

// Scheduler periodically checks whether the next collection is on its eve
type Scheduler struct {
	profiles ProfileLoader
	calendar core.Calendar
	notifier Notifier
	clock    core.Clock
	interval time.Duration
	lang     core.Language
	location *time.Location
	stopChan chan struct{}
	logger   *slog.Logger

	mu           sync.Mutex
	lastNotified time.Time // instant of the last occurrence a reminder was sent for
}

// NewScheduler creates a new reminder scheduler
func NewScheduler(profiles ProfileLoader, calendar core.Calendar, notifier Notifier, clock core.Clock, opts Options, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = core.RealClock{}
	}
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Minute
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Scheduler{
		profiles: profiles,
		calendar: calendar,
		notifier: notifier,
		clock:    clock,
		interval: opts.Interval,
		lang:     opts.Language,
		location: opts.Location,
		stopChan: make(chan struct{}),
		logger:   logger.With("component", "reminder"),
	}
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	s.logger.Info("Reminder scheduler started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(context.Background())

	for {
		select {
		case <-ticker.C:
			s.tick(context.Background())
		case <-s.stopChan:
			s.logger.Info("Reminder scheduler stopped")
			return
		}
	}
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopChan)
}

// tick performs one cycle of the scheduler
func (s *Scheduler) tick(ctx context.Context) {
	cfg := s.profiles.Load(ctx)
	if cfg == nil {
		s.logger.Debug("No profile configured, skipping tick")
		return
	}

	now := s.clock.Now().In(s.location)
	occ, ok := core.NextCollection(now, cfg, s.calendar)
	if !ok {
		s.logger.Debug("No upcoming collection", "neighborhood", cfg.Neighborhood)
		return
	}

	if !core.IsEve(now, occ) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if occ.At.Equal(s.lastNotified) {
		s.logger.Debug("Reminder already sent, skipping", "label", occ.Label, "at", occ.At)
		return
	}

	r := Reminder{
		Neighborhood:   cfg.Neighborhood,
		Label:          occ.Label,
		At:             occ.At,
		HoursRemaining: occ.HoursRemaining,
		DurationText:   core.FormatDuration(occ.HoursRemaining),
		DateText:       core.FormatCollectionDate(occ.At, s.lang),
	}

	if err := s.notifier.NotifyEve(ctx, r); err != nil {
		s.logger.Error("Failed to send reminder", "label", occ.Label, "error", err)
		return
	}

	s.lastNotified = occ.At
}

// LogNotifier writes reminders to the log
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs each reminder
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

// NotifyEve logs the reminder at info level
func (n *LogNotifier) NotifyEve(ctx context.Context, r Reminder) error {
	n.logger.InfoContext(ctx, "Put the bins out",
		"neighborhood", r.Neighborhood,
		"label", r.Label,
		"date", r.DateText,
		"remaining", r.DurationText)
	return nil
}

// MultiNotifier delivers each reminder to every wrapped notifier.
// It returns the first error after trying all of them.
type MultiNotifier []Notifier

// NotifyEve fans the reminder out
func (m MultiNotifier) NotifyEve(ctx context.Context, r Reminder) error {
	var firstErr error
	for _, n := range m {
		if err := n.NotifyEve(ctx, r); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = MultiNotifier(nil)
)
