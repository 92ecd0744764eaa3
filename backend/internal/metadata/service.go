package metadata

import (
	"time"

	"go.uber.org/zap"

	"company-graph/backend/internal/chart"
	"company-graph/backend/internal/metrics"
	"company-graph/backend/internal/records"
	apperrors "company-graph/backend/pkg/errors"
	"company-graph/backend/pkg/logger"
)

// CompanyMetadata is the joined financial and ESG view of one company
type CompanyMetadata struct {
	Company    string                    `json:"company"`
	Financials []records.FinancialRecord `json:"financials"`
	ESG        records.EsgRecord         `json:"esg"`
	Chart      string                    `json:"chart"`
}

// ChartRenderer draws the financial chart as base64 PNG
type ChartRenderer interface {
	RenderBase64(company string, points []chart.Point) (string, error)
}

// Service builds company metadata from the record store
type Service struct {
	store    *records.Store
	renderer ChartRenderer
	logger   *zap.Logger
}

// NewService creates a new metadata service
func NewService(store *records.Store, renderer ChartRenderer) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
		logger:   logger.Get(),
	}
}

// Get returns the metadata of a company. It fails with ErrCompanyDataNotFound
// when the company has no financial rows or no ESG rows. The ESG snapshot is
// the first stored row for the company; callers must not rely on its year.
func (s *Service) Get(company string) (*CompanyMetadata, error) {
	financials := s.store.FinancialsFor(company)
	esg := s.store.ESGFor(company)
	if len(financials) == 0 || len(esg) == 0 {
		return nil, apperrors.NewCompanyDataNotFound(company)
	}

	points := make([]chart.Point, 0, len(financials))
	for _, row := range financials {
		points = append(points, chart.Point{
			Year:      row.Year,
			Revenue:   row.Revenue,
			NetIncome: row.NetIncome,
		})
	}

	start := time.Now()
	encoded, err := s.renderer.RenderBase64(company, points)
	metrics.ObserveChartRender(time.Since(start), err)
	if err != nil {
		return nil, apperrors.NewChartRenderFailed(company, err)
	}

	s.logger.Debug("Rendered company chart",
		zap.String("company", company),
		zap.Int("years", len(points)),
		zap.Duration("duration", time.Since(start)),
	)

	return &CompanyMetadata{
		Company:    company,
		Financials: financials,
		ESG:        esg[0],
		Chart:      encoded,
	}, nil
}
