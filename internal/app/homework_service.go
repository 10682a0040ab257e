// internal/app/homework_service.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/failure"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const errorMessagePrefix = "Сбой в работе программы: "

// PollingService is the unit of work the scheduler repeats.
type PollingService interface {
	// RunCycle runs one fetch-validate-notify pass. A returned error has
	// already been logged and reported; the caller only decides when to run again.
	RunCycle(ctx context.Context) error
}

// HomeworkService runs polling cycles: fetch statuses, validate them,
// notify the chat about status changes and about new errors.
// It is not safe for concurrent use; cycles are expected to run one at a time.
type HomeworkService struct {
	statusClient   homework.StatusClient
	telegramClient domainTelegram.Client
	notifRepo      notification.Repository // optional journal, may be nil
	chatID         int64
	logger         *logrus.Entry

	tracker StatusTracker
	dedup   ErrorDeduplicator
	cursor  int64
	now     func() time.Time
}

func NewHomeworkService(
	sc homework.StatusClient,
	tc domainTelegram.Client,
	nr notification.Repository,
	chatID int64,
	fromDate int64, // initial cursor, 0 means "now"
	logger *logrus.Entry,
) *HomeworkService {
	return &HomeworkService{
		statusClient:   sc,
		telegramClient: tc,
		notifRepo:      nr,
		chatID:         chatID,
		logger:         logger,
		cursor:         fromDate,
		now:            time.Now,
	}
}

// Cursor returns the from_date of the next request. Zero until the first
// cycle pins it to the current time.
func (s *HomeworkService) Cursor() int64 {
	return s.cursor
}

// RunCycle performs one polling cycle. Errors are logged and, when new,
// reported to the chat before being returned; they are never fatal.
func (s *HomeworkService) RunCycle(ctx context.Context) error {
	logCtx := s.logger.WithField("cycle_id", uuid.NewString())

	if err := s.poll(ctx, logCtx); err != nil {
		s.reportError(ctx, logCtx, err)
		return err
	}
	s.dedup.Reset()
	return nil
}

func (s *HomeworkService) poll(ctx context.Context, logCtx *logrus.Entry) error {
	if s.cursor == 0 {
		s.cursor = s.now().Unix()
	}
	fromDate := s.cursor
	logCtx = logCtx.WithField("from_date", fromDate)
	logCtx.Debug("Requesting homework statuses")

	raw, err := s.statusClient.GetStatuses(ctx, fromDate)
	if err != nil {
		return err
	}

	resp, err := homework.CheckResponse(raw)
	if err != nil {
		return err
	}
	if resp.HasCurrentDate {
		s.cursor = resp.CurrentDate
	}
	if err := resp.CheckProgress(); err != nil {
		return err
	}
	if len(resp.Homeworks) == 0 {
		logCtx.Debug("No homework updates since cursor")
		return nil
	}

	hw, err := homework.ParseStatus(resp.Homeworks[0])
	if err != nil {
		return err
	}
	logCtx = logCtx.WithFields(logrus.Fields{"homework": hw.Name, "status": hw.Status})

	if !s.tracker.Observe(hw.Status) {
		logCtx.Debug("Homework status unchanged")
		return nil
	}
	logCtx.Info("Homework status changed")
	s.notify(ctx, logCtx, notification.KindStatusChange, hw.Message)
	return nil
}

func (s *HomeworkService) reportError(ctx context.Context, logCtx *logrus.Entry, err error) {
	kind, _ := failure.KindOf(err)
	logCtx = logCtx.WithField("error_kind", kind)
	logCtx.WithError(err).Error("Polling cycle failed")

	if !s.dedup.ShouldNotify(failure.Signature(err)) {
		logCtx.Debug("Error already reported to chat, skipping notification")
		return
	}
	s.notify(ctx, logCtx, notification.KindError, errorMessagePrefix+err.Error())
}

// notify sends text to the configured chat. Delivery failures end here:
// they are logged and journaled, never returned.
func (s *HomeworkService) notify(ctx context.Context, logCtx *logrus.Entry, kind notification.Kind, text string) {
	logCtx = logCtx.WithFields(logrus.Fields{"chat_id": s.chatID, "notification": kind})

	n := &notification.Notification{
		Kind:   kind,
		ChatID: s.chatID,
		Text:   text,
	}

	err := s.telegramClient.SendMessage(s.chatID, text, nil)
	if err != nil {
		if !failure.Is(err, failure.KindDelivery) {
			err = failure.Wrap(failure.KindDelivery, err, "failed to send message")
		}
		logCtx.WithError(err).Error("Failed to deliver notification")
		n.ErrorText = sql.NullString{String: err.Error(), Valid: true}
	} else {
		logCtx.Info("Notification sent")
		n.Delivered = true
	}

	s.journal(ctx, logCtx, n)
}

func (s *HomeworkService) journal(ctx context.Context, logCtx *logrus.Entry, n *notification.Notification) {
	if s.notifRepo == nil {
		return
	}
	n.CreatedAt = s.now()
	if err := s.notifRepo.Create(ctx, n); err != nil {
		logCtx.WithError(fmt.Errorf("journal notification: %w", err)).Warn("Failed to record notification")
	}
}
