package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/terraincognita07/cyclenote/internal/models"
	"go.uber.org/zap"
)

const defaultReminderInterval = 6 * time.Hour

type ReminderPoller interface {
	Poll(today time.Time) models.ReminderResult
}

type ReminderSender interface {
	Send(ctx context.Context, title string, body string) error
}

// ReminderService polls the tracker on a ticker and delivers each reminder at
// most once per day.
type ReminderService struct {
	poller    ReminderPoller
	sender    ReminderSender
	translate Translator
	interval  time.Duration
	now       func() time.Time
	logger    *zap.Logger

	mu   sync.Mutex
	sent map[string]time.Time
}

func NewReminderService(poller ReminderPoller, sender ReminderSender, translate Translator, interval time.Duration, logger *zap.Logger) *ReminderService {
	if interval <= 0 {
		interval = defaultReminderInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderService{
		poller:    poller,
		sender:    sender,
		translate: guidanceText(translate),
		interval:  interval,
		now:       time.Now,
		logger:    logger,
		sent:      make(map[string]time.Time),
	}
}

func (service *ReminderService) Start(ctx context.Context) {
	if service.sender == nil {
		service.logger.Info("reminders disabled: no sender configured")
		return
	}

	ticker := time.NewTicker(service.interval)
	go func() {
		defer ticker.Stop()

		service.RunOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce polls and delivers due reminders, returning how many were sent.
func (service *ReminderService) RunOnce(ctx context.Context) int {
	today := CivilDay(service.now())
	result := service.poller.Poll(today)
	if !result.ShouldNotify || service.sender == nil {
		return 0
	}

	delivered := 0
	for _, reminder := range result.Reminders {
		key := fmt.Sprintf("%s:%s", reminder.Kind, FormatDay(today))
		if !service.shouldSend(key, today) {
			continue
		}
		title, body := service.render(reminder)
		if err := service.sender.Send(ctx, title, body); err != nil {
			service.logger.Warn("reminders: delivery failed", zap.String("kind", string(reminder.Kind)), zap.Error(err))
			service.forget(key)
			continue
		}
		service.logger.Info("reminders: delivered", zap.String("kind", string(reminder.Kind)))
		delivered++
	}
	return delivered
}

func (service *ReminderService) render(reminder models.Reminder) (string, string) {
	prefix := "reminder." + string(reminder.Kind)
	body := service.translate(prefix + ".body")
	body = strings.ReplaceAll(body, "{days}", strconv.Itoa(reminder.DaysUntil))
	body = strings.ReplaceAll(body, "{date}", FormatDay(reminder.Date))
	return service.translate(prefix + ".title"), body
}

func (service *ReminderService) shouldSend(key string, today time.Time) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if sentOn, ok := service.sent[key]; ok && sameCalendarDay(sentOn, today) {
		return false
	}
	service.sent[key] = today
	if len(service.sent) > 500 {
		service.sent = map[string]time.Time{key: today}
	}
	return true
}

func (service *ReminderService) forget(key string) {
	service.mu.Lock()
	defer service.mu.Unlock()
	delete(service.sent, key)
}
