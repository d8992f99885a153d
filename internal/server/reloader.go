package server

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Reloader reloads the holder's dataset on a cron schedule.
type Reloader struct {
	cron *cron.Cron
}

// NewReloader schedules holder.Reload on spec (standard cron syntax or
// descriptors such as "@every 1h"). A tick that fires while the previous
// reload is still running is skipped.
func NewReloader(holder *Holder, spec string) (*Reloader, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(spec, func() {
		if err := holder.Reload(context.Background()); err != nil {
			log.Warn().Err(err).Str("schedule", spec).Msg("scheduled reload failed, keeping previous dataset")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule reload: %w", err)
	}
	return &Reloader{cron: c}, nil
}

// Start begins running the schedule in the background.
func (r *Reloader) Start() {
	r.cron.Start()
}

// Stop halts the schedule and waits for a running reload to finish.
func (r *Reloader) Stop() {
	<-r.cron.Stop().Done()
}
