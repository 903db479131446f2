package repository

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/accident_map/internal/models"
	"github.com/shenikar/accident_map/internal/observability"
	"github.com/shenikar/accident_map/internal/service"
	"github.com/shenikar/accident_map/pkg/firebolt"
	"github.com/sirupsen/logrus"
)

// Connector открывает соединение с хранилищем на время одного запроса
type Connector interface {
	Connect(ctx context.Context) (firebolt.Session, error)
}

type AccidentRepository struct {
	connector Connector
	clock     clockwork.Clock
	logger    *logrus.Logger
	metrics   *observability.Metrics
}

func NewAccidentRepository(connector Connector, clock clockwork.Clock, logger *logrus.Logger, metrics *observability.Metrics) service.AccidentRepository {
	return &AccidentRepository{
		connector: connector,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// FindAccidents открывает соединение, выполняет запрос и закрывает соединение
// на любом пути выхода. Повторов нет.
func (r *AccidentRepository) FindAccidents(ctx context.Context, q models.Query) (result *models.QueryResult, err error) {
	log := r.logger.WithField("repository", "accident")

	defer func() {
		if err != nil {
			r.metrics.WarehouseQueries.WithLabelValues("error").Inc()
			// на уровне Error ошибку пишет сервис вместе с полями запроса
			log.WithError(err).Debug("Warehouse query failed")
		}
	}()

	session, err := r.connector.Connect(ctx)
	if err != nil {
		return nil, &models.ExecutionError{Op: "connect to warehouse", Err: err}
	}
	defer func() {
		// ошибка закрытия не должна влиять на результат запроса
		if closeErr := session.Close(); closeErr != nil {
			log.WithError(closeErr).Debug("Failed to close warehouse connection")
		}
	}()

	records := make([]models.IncidentRecord, 0)
	start := r.clock.Now()
	if err := session.SelectContext(ctx, &records, q.SQL, q.Args...); err != nil {
		return nil, &models.ExecutionError{Op: "execute query", Err: err}
	}
	elapsed := r.clock.Since(start)

	r.metrics.WarehouseQueries.WithLabelValues("success").Inc()
	r.metrics.WarehouseDuration.Observe(elapsed.Seconds())

	scanned := int64(len(records))
	return &models.QueryResult{
		Records:     records,
		Elapsed:     elapsed,
		ScannedRows: &scanned,
	}, nil
}
