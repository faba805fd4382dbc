package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"todo-manager/backend/internal/services"
)

// Dispatcher periodically checks for notifications whose scheduled time has
// arrived and logs them. It only reads state; delivery to real providers is
// where an integration would plug in.
type Dispatcher struct {
	notifications *services.NotificationService
	interval      time.Duration
	seen          map[string]struct{}
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

func New(notifications *services.NotificationService, interval time.Duration) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		notifications: notifications,
		interval:      interval,
		seen:          make(map[string]struct{}),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func (d *Dispatcher) Start() {
	logrus.WithField("interval", d.interval).Info("starting notification dispatcher")
	d.wg.Add(1)
	go d.loop()
}

func (d *Dispatcher) Stop() {
	logrus.Info("stopping notification dispatcher")
	d.cancel()
	d.wg.Wait()
	logrus.Info("notification dispatcher stopped")
}

func (d *Dispatcher) loop() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-ticker.C:
			d.dispatchDue(time.Now())
		}
	}
}

// dispatchDue logs every due notification exactly once per process
// lifetime.
func (d *Dispatcher) dispatchDue(now time.Time) {
	for _, notification := range d.notifications.Due(now) {
		if _, done := d.seen[notification.ID]; done {
			continue
		}
		d.seen[notification.ID] = struct{}{}

		logrus.WithFields(logrus.Fields{
			"notification_id": notification.ID,
			"item_id":         notification.ItemID,
			"scheduled_for":   notification.ScheduledFor,
		}).Info(notification.Message)
	}
}
