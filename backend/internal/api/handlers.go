package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"company-graph/backend/internal/constants"
	"company-graph/backend/internal/graph"
	apperrors "company-graph/backend/pkg/errors"
)

// SearchResponse lists the direct customers and the recommended prospects of a company
type SearchResponse struct {
	CurrentCustomers   []string `json:"current_customers"`
	PotentialCustomers []string `json:"potential_customers"`
}

// Index serves the search page
func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Companies": s.graph.Nodes(),
	})
}

// Search returns current and potential customers of the posted company
func (s *Server) Search(c *gin.Context) {
	// An empty value is a lookup miss, not a malformed request.
	company, ok := c.GetPostForm(constants.FormFieldCompany)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing form field: " + constants.FormFieldCompany})
		return
	}

	if !s.graph.HasNode(company) {
		s.respondError(c, apperrors.NewCompanyNotFound(company))
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		CurrentCustomers:   s.graph.Neighbors(company),
		PotentialCustomers: graph.PotentialCustomers(s.graph, company),
	})
}

// Metadata returns financials, the ESG snapshot and the chart of a company
func (s *Server) Metadata(c *gin.Context) {
	company := c.Param("company")

	md, err := s.metadata.Get(company)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, md)
}

// Companies lists every company in the graph
func (s *Server) Companies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"companies": s.graph.Nodes()})
}

// Health reports liveness
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) respondError(c *gin.Context, err error) {
	var companyErr *apperrors.ErrCompanyNotFound
	var dataErr *apperrors.ErrCompanyDataNotFound

	switch {
	case apperrors.As(err, &companyErr):
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrMsgCompanyNotFound})
	case apperrors.As(err, &dataErr):
		c.JSON(http.StatusNotFound, gin.H{"error": constants.ErrMsgCompanyDataNotFound})
	default:
		s.logger.Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrMsgInternal})
	}
}
