package cron

import (
	"context"

	"gopkg.in/robfig/cron.v2"

	"github.com/antobinary/bbb-pads/log"
	"github.com/antobinary/bbb-pads/registry/services"
)

const (
	spec = "0 */10 * * * *" // Every 10 minutes
	// spec = "2 * * * * *" // Every 2 minutes. For dev
)

// Janitor revokes sessions whose validity window has passed. Expiry is
// recorded when a session is created but nothing else enforces it, so
// the janitor sweeps on a schedule.
type Janitor struct {
	service *services.Registry
	logger  log.Logger

	c *cron.Cron
}

func NewJanitor(service *services.Registry, logger log.Logger) *Janitor {
	return &Janitor{
		service: service,
		logger:  logger,
	}
}

func (j *Janitor) Start(ctx context.Context) {
	c := cron.New()
	c.AddFunc(spec, func() {
		if err := j.Sweep(ctx); err != nil {
			j.logger.Errorf("could not sweep sessions: %v", err)
		}
	})
	c.Start()
	j.c = c
}

func (j *Janitor) Stop() {
	if j.c != nil {
		j.c.Stop()
		j.c = nil
	}
}

func (j *Janitor) Sweep(ctx context.Context) error {
	n, err := j.service.SweepExpiredSessions(ctx)
	if err != nil {
		return err
	}

	if n > 0 {
		j.logger.Printf("swept %d expired sessions", n)
	}
	return nil
}
