package constants

// Route constants
const (
	RouteIndex     = "/"
	RouteSearch    = "/search"
	RouteMetadata  = "/metadata/:company"
	RouteCompanies = "/companies"
	RouteHealth    = "/health"
	RouteMetrics   = "/metrics"
)

// Form fields
const (
	// FormFieldCompany is the search form's company name field
	FormFieldCompany = "company"
)

// Error messages returned in JSON error payloads
const (
	ErrMsgCompanyNotFound     = "Company not found"
	ErrMsgCompanyDataNotFound = "Company data not found"
	ErrMsgInternal            = "Internal server error"
)

// HeaderRequestID carries the per-request id
const HeaderRequestID = "X-Request-ID"
