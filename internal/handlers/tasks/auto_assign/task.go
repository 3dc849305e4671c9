package auto_assign

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

const actor = "auto-dispatch"

type Service interface {
	AssignAllPending(ctx context.Context, actor string) (int, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// AutoAssign periodically offers pending orders to available couriers.
type AutoAssign struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func New(log taskLogger, service Service, interval time.Duration) *AutoAssign {
	return &AutoAssign{
		log:      log,
		service:  service,
		interval: interval,
	}
}

// TTL returns the interval between runs.
func (a *AutoAssign) TTL() time.Duration {
	return a.interval
}

// Do runs one bulk assignment pass.
func (a *AutoAssign) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	assigned, err := a.service.AssignAllPending(ctxWithTimeout, actor)
	if err != nil {
		return err
	}

	if assigned > 0 {
		a.log.With(
			logger.NewField("assigned", assigned),
		).Info("auto assignment pass completed")
	}
	return nil
}

// Info returns a human-readable task name for logging.
func (a *AutoAssign) Info() string {
	return "auto assign pending orders"
}
