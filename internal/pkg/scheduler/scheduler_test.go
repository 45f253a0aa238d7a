package scheduler_test

import (
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestaocontratos/internal/pkg/logger"
	"gestaocontratos/internal/pkg/scheduler"
)

type contador struct{ n int }

func (c *contador) Refresh() { c.n++ }

func TestViradaDoDia_DisparaAMeiaNoite(t *testing.T) {
	agenda, err := cron.ParseStandard(scheduler.ViradaDoDia)
	require.NoError(t, err)

	proxima := agenda.Next(time.Date(2025, time.March, 31, 15, 4, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), proxima)
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := scheduler.New(&contador{}, logger.NewLogger("error"))
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	proxima := s.Proxima()
	require.False(t, proxima.IsZero())
	assert.Equal(t, 0, proxima.Hour())
	assert.Equal(t, 0, proxima.Minute())
	assert.True(t, proxima.After(time.Now()))
}
