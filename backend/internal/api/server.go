package api

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"company-graph/backend/internal/constants"
	"company-graph/backend/internal/graph"
	"company-graph/backend/internal/metadata"
)

//go:embed templates/*.html
var templatesFS embed.FS

// MetadataProvider looks up the metadata of one company
type MetadataProvider interface {
	Get(company string) (*metadata.CompanyMetadata, error)
}

// Server holds the read-only state every handler works against
type Server struct {
	graph    *graph.Graph
	metadata MetadataProvider
	logger   *zap.Logger
}

// NewServer creates a new API server
func NewServer(g *graph.Graph, md MetadataProvider, log *zap.Logger) *Server {
	return &Server{
		graph:    g,
		metadata: md,
		logger:   log,
	}
}

// Router builds the gin engine with middleware and every route registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.Use(Logger(s.logger))
	router.Use(gin.Recovery())
	router.Use(CORS())
	router.Use(Metrics())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.GET(constants.RouteIndex, s.Index)
	router.POST(constants.RouteSearch, s.Search)
	router.GET(constants.RouteMetadata, s.Metadata)
	router.GET(constants.RouteCompanies, s.Companies)
	router.GET(constants.RouteHealth, s.Health)
	router.GET(constants.RouteMetrics, gin.WrapH(promhttp.Handler()))

	return router
}
