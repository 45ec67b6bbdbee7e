// Package jobs agenda tarefas periódicas sobre a grade com robfig/cron.
package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"goarmazem/internal/domain"
	"goarmazem/internal/pkg/logger"
)

// ExpiryScanner é o contrato que o job espera do serviço da grade.
type ExpiryScanner interface {
	FindExpiring(date string) ([]domain.ExpiringRecord, error)
}

// ExpirationJob varre a grade em busca de itens frágeis vencidos ou a vencer
// e registra um aviso por item encontrado.
type ExpirationJob struct {
	scanner ExpiryScanner
	spec    string
	cron    *cron.Cron
	logger  logger.Logger
}

// NewExpirationJob cria o job; spec é uma expressão cron de 5 campos.
func NewExpirationJob(scanner ExpiryScanner, spec string, logger logger.Logger) *ExpirationJob {
	return &ExpirationJob{
		scanner: scanner,
		spec:    spec,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start agenda a varredura e inicia o cron.
func (j *ExpirationJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.RunOnce() }); err != nil {
		return fmt.Errorf("expressão cron inválida %q: %w", j.spec, err)
	}
	j.cron.Start()
	j.logger.Info("Job de validade iniciado.", map[string]interface{}{"schedule": j.spec})
	return nil
}

// Stop interrompe o agendamento e espera a varredura em andamento terminar.
func (j *ExpirationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Job de validade parado.", nil)
}

// RunOnce executa uma varredura na data corrente e devolve quantos itens foram reportados.
func (j *ExpirationJob) RunOnce() int {
	found, err := j.scanner.FindExpiring("")
	if err != nil {
		j.logger.Error("Varredura de validade falhou.", err)
		return 0
	}

	for _, rec := range found {
		j.logger.Warn("Item frágil com validade próxima.", map[string]interface{}{
			"id":        rec.Item.ID,
			"name":      rec.Item.Name,
			"status":    rec.Status.String(),
			"locations": len(rec.Locations),
		})
	}
	j.logger.Info("Varredura de validade concluída.", map[string]interface{}{"reported": len(found)})
	return len(found)
}
