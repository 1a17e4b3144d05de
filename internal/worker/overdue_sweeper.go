package worker

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"oficina_prime/internal/usecase"
)

const defaultSweepSpec = "*/5 * * * *"

// OverdueSweeper periodically flags AGENDADO appointments whose slot has
// passed as ATRASADO. The sweep runs at startup and then on a cron
// schedule, so a restarted process catches up immediately.
type OverdueSweeper struct {
	store *usecase.Store
	cron  *cron.Cron
	spec  string
}

func NewOverdueSweeper(store *usecase.Store) *OverdueSweeper {
	return &OverdueSweeper{
		store: store,
		cron:  cron.New(),
		spec:  defaultSweepSpec,
	}
}

// Start registers the sweep and launches the scheduler. It returns an
// error only when the cron spec is invalid.
func (w *OverdueSweeper) Start(ctx context.Context) error {
	w.Sweep(ctx)

	_, err := w.cron.AddFunc(w.spec, func() {
		w.Sweep(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	log.Info().Str("spec", w.spec).Msg("overdue appointment sweeper started")
	return nil
}

// Stop waits for a running sweep to finish.
func (w *OverdueSweeper) Stop() {
	<-w.cron.Stop().Done()
	log.Info().Msg("overdue appointment sweeper stopped")
}

func (w *OverdueSweeper) Sweep(ctx context.Context) {
	if marked := w.store.MarkOverdueAppointments(ctx); marked > 0 {
		log.Info().Int("marked", marked).Msg("appointments flagged as overdue")
	}
}
