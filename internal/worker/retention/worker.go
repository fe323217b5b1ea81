package retention

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// schedule расписание очистки: раз в сутки
const schedule = "@every 24h"

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// DeleteOlderThan удаляет бронирования с датой строго раньше cutoff чанками по batchSize
	DeleteOlderThan(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Worker фоновая очистка старых бронирований
// Запускается при старте процесса и далее раз в 24 часа
// Ошибки только логируются; повтор - на следующем тике, не раньше
type Worker struct {
	bookingRepo BookingRepository
	logger      Logger

	retentionMonths int
	batchSize       int
	cron            *cron.Cron
}

// NewWorker создает воркер очистки
func NewWorker(bookingRepo BookingRepository, retentionMonths, batchSize int, logger Logger) *Worker {
	return &Worker{
		bookingRepo:     bookingRepo,
		logger:          logger,
		retentionMonths: retentionMonths,
		batchSize:       batchSize,
		cron:            cron.New(),
	}
}

// Start запускает первый проход немедленно и ставит расписание
func (w *Worker) Start() error {
	// Первый проход синхронно в отдельной горутине, чтобы не задерживать старт сервера
	go w.runOnce()

	if _, err := w.cron.AddFunc(schedule, w.runOnce); err != nil {
		return err
	}

	w.cron.Start()
	w.logger.Info("Retention worker started: purging bookings older than %d months every 24h (batch=%d)",
		w.retentionMonths, w.batchSize)
	return nil
}

// Stop останавливает расписание и дожидается завершения текущего прохода
func (w *Worker) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info("Retention worker stopped")
}

// runOnce выполняет один проход очистки
func (w *Worker) runOnce() {
	cutoff := time.Now().AddDate(0, -w.retentionMonths, 0)

	deleted, err := w.bookingRepo.DeleteOlderThan(context.Background(), cutoff, w.batchSize)
	if err != nil {
		// Не останавливаем расписание: повтор на следующем тике
		w.logger.Error("Retention purge failed (deleted %d before failure): %v", deleted, err)
		return
	}

	if deleted > 0 {
		w.logger.Info("Retention purge removed %d bookings older than %s", deleted, cutoff.Format(domain.DateFormat))
	}
}
