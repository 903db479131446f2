package v1

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/accident_map/internal/config"
	"github.com/shenikar/accident_map/internal/models"
	"github.com/shenikar/accident_map/internal/observability"
	"github.com/shenikar/accident_map/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	accidentService service.AccidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
	metrics         *observability.Metrics
	indexTemplate   *template.Template
}

func NewHandler(accidentService service.AccidentService, logger *logrus.Logger, cfg *config.Config, metrics *observability.Metrics) *Handler {
	return &Handler{
		accidentService: accidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
		metrics:         metrics,
		indexTemplate:   template.Must(template.ParseFS(templatesFS, "templates/index.html")),
	}
}

// @Summary Index page
// @Description Render the map page with the list of known locations
// @Tags Map
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *Handler) index(c *gin.Context) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.indexTemplate,
		Name:     "index.html",
		Data: IndexPageData{
			Locations:       h.accidentService.LocationNames(),
			MapboxToken:     h.cfg.MapboxToken,
			DefaultLocation: h.cfg.DefaultLocation,
		},
	})
}

// @Summary Get accidents as GeoJSON
// @Description Resolve a location to a polygon, query the warehouse for accidents inside it and return them as a FeatureCollection
// @Tags Accidents
// @Produce json
// @Param location query string false "Place name" default(Long Beach)
// @Param severity query string false "Exact severity"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} GeoJSONResponse
// @Failure 400 {object} ErrorResponse "Location could not be resolved or invalid parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No data found"
// @Failure 500 {object} ErrorResponse "Query execution failed"
// @Router /geojson [get]
func (h *Handler) getGeoJSON(c *gin.Context) {
	input := GeoJSONQuery{
		Location:  strings.TrimSpace(c.DefaultQuery("location", h.cfg.DefaultLocation)),
		Severity:  strings.TrimSpace(c.Query("severity")),
		StartDate: strings.TrimSpace(c.Query("start_date")),
		EndDate:   strings.TrimSpace(c.Query("end_date")),
	}
	log := requestLogger(c, h.logger).WithField("method", "getGeoJSON").WithField("location", input.Location)

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		h.metrics.GeoJSONRequests.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	outcome := h.accidentService.SearchAccidents(c.Request.Context(), QueryToFilter(input))
	h.metrics.GeoJSONRequests.WithLabelValues(outcome.Kind.String()).Inc()

	status := StatusForOutcome(outcome.Kind)
	if outcome.Kind != models.OutcomeFound {
		log.WithField("outcome", outcome.Kind.String()).Info("GeoJSON request finished without data")
		c.JSON(status, OutcomeToErrorResponse(outcome))
		return
	}

	c.JSON(status, ReportToResponse(outcome.Report))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
