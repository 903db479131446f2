package service

//go:generate mockgen -source=accident.go -destination=mocks/mock_accident.go -package=mocks

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
	"github.com/shenikar/accident_map/internal/models"
	"github.com/shenikar/accident_map/internal/observability"
	"github.com/sirupsen/logrus"
)

// Geocoder определяет контракт внешнего геокодера. nil без ошибки означает "не найдено".
type Geocoder interface {
	Geocode(ctx context.Context, query string) (orb.Geometry, error)
}

// LocationResolver превращает название места в полигон WKT
type LocationResolver interface {
	Resolve(ctx context.Context, name string) (string, error)
	Names() []string
}

// AccidentRepository определяет контракт для работы с хранилищем аварий
type AccidentRepository interface {
	FindAccidents(ctx context.Context, q models.Query) (*models.QueryResult, error)
}

// AccidentService определяет контракт для поиска аварий
type AccidentService interface {
	SearchAccidents(ctx context.Context, filter models.Filter) models.Outcome
	LocationNames() []string
}

type accidentService struct {
	resolver LocationResolver
	repo     AccidentRepository
	logger   *logrus.Logger
	metrics  *observability.Metrics
}

func NewAccidentService(resolver LocationResolver, repo AccidentRepository, logger *logrus.Logger, metrics *observability.Metrics) AccidentService {
	return &accidentService{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
		metrics:  metrics,
	}
}

// SearchAccidents выполняет поиск целиком: место -> запрос -> хранилище -> GeoJSON.
// Ошибки не возвращаются, а описываются видом Outcome.
func (s *accidentService) SearchAccidents(ctx context.Context, filter models.Filter) models.Outcome {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "accident",
		"method":   "SearchAccidents",
		"location": filter.Location,
	})

	polygon, err := s.resolver.Resolve(ctx, filter.Location)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve location")
		var resErr *models.ResolutionError
		if !errors.As(err, &resErr) {
			err = &models.ResolutionError{Location: filter.Location, Msg: err.Error(), Err: err}
		}
		return models.Outcome{Kind: models.OutcomeUnresolved, Err: err}
	}

	query := BuildAccidentQuery(polygon, filter)
	log.WithField("query", query.Text).Debug("Query built")

	result, err := s.repo.FindAccidents(ctx, query)
	if err != nil {
		log.WithError(err).Error("Error executing query")
		return models.Outcome{Kind: models.OutcomeFailed, Err: err}
	}
	log.Infof("Query executed in %.4f seconds for location: %s", result.Elapsed.Seconds(), filter.Location)

	if len(result.Records) == 0 {
		return models.Outcome{Kind: models.OutcomeEmpty}
	}

	features, skipped := BuildFeatureCollection(result.Records, log)
	if skipped > 0 {
		s.metrics.SkippedRows.Add(float64(skipped))
	}

	return models.Outcome{
		Kind: models.OutcomeFound,
		Report: &models.AccidentReport{
			Features:      features,
			Query:         query.Text,
			QueryTime:     result.Elapsed,
			ScannedRows:   result.ScannedRows,
			AccidentCount: len(features.Features),
		},
	}
}

// LocationNames возвращает имена мест из статической таблицы
func (s *accidentService) LocationNames() []string {
	return s.resolver.Names()
}
