package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"StockStress/internal/collector"
	"StockStress/internal/model"
	"StockStress/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically re-runs the assessment and pushes the report.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Range     string
	RSIPeriod int
	Ctx       context.Context

	mu   sync.Mutex
	last *model.Assessment
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, historyRange string, rsiPeriod int) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  n,
		Range:     historyRange,
		RSIPeriod: rsiPeriod,
		Ctx:       ctx,
	}
}

// Register registers the periodic assessment task.
func (s *Scheduler) Register(assessCron string) error {
	if _, err := s.Cron.AddFunc(assessCron, s.assessTask); err != nil {
		return fmt.Errorf("register assess task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the assessment task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.assessTask()
}

// Latest returns the most recent assessment, nil before the first run.
func (s *Scheduler) Latest() *model.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Scheduler) assessTask() {
	log.Printf("[INFO] running assessment for %s", s.Collector.Symbol)
	a, err := s.Collector.Assess(s.Range, s.RSIPeriod)
	if err != nil {
		log.Printf("[ERROR] assessment: %v", err)
		s.trySend(fmt.Sprintf("❌ assessment for %s failed: %v", s.Collector.Symbol, err))
		return
	}

	s.mu.Lock()
	s.last = a
	s.mu.Unlock()

	log.Printf("[INFO] %s signal: %s (rsi=%.4f)", a.Symbol, a.Signal.Band, a.Signal.LastRSI)
	s.trySend(notifier.FormatAssessment(a))
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

// HandleCommand dispatches Telegram commands to scheduler actions.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/check":
		go s.RunNow()
		return fmt.Sprintf("running assessment for %s...", s.Collector.Symbol)
	case "/status":
		a := s.Latest()
		if a == nil {
			return "no assessment yet, send /check to run one"
		}
		return notifier.FormatAssessment(a)
	case "/help", "/start":
		return "commands:\n/check - run an assessment now\n/status - show the latest assessment"
	default:
		return "unknown command, try /help"
	}
}
