// Package scheduler agenda as tarefas periódicas do serviço.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"gestaocontratos/internal/pkg/logger"
)

// ViradaDoDia dispara à meia-noite: "vendas do mês" e "contratos ativos" dependem da data.
const ViradaDoDia = "0 0 * * *"

// Atualizador acorda as assinaturas do painel sem que a coleção tenha mudado.
type Atualizador interface {
	Refresh()
}

// Scheduler envolve o cron e registra as tarefas do painel.
type Scheduler struct {
	cron   *cron.Cron
	logger logger.Logger
}

// New cria o agendador e registra a atualização diária do painel.
func New(painel Atualizador, log logger.Logger) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, logger: log}

	if _, err := c.AddFunc(ViradaDoDia, func() {
		log.Info("Virada do dia: atualizando painéis.", nil)
		painel.Refresh()
	}); err != nil {
		return nil, err
	}
	return s, nil
}

// Start inicia o cron em background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Agendador iniciado.", map[string]interface{}{"tarefas": len(s.cron.Entries())})
}

// Stop para o cron e espera as tarefas em andamento.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Proxima devolve o próximo disparo da virada do dia (zero antes de Start).
func (s *Scheduler) Proxima() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}
