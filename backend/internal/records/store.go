package records

// Store holds the three fixed tables. It is built once and never mutated,
// so it is safe for concurrent readers.
type Store struct {
	sales      []SalesRecord
	financials []FinancialRecord
	esg        []EsgRecord
}

// NewStore creates a store over the given tables. The slices are copied.
func NewStore(sales []SalesRecord, financials []FinancialRecord, esg []EsgRecord) *Store {
	return &Store{
		sales:      append([]SalesRecord(nil), sales...),
		financials: append([]FinancialRecord(nil), financials...),
		esg:        append([]EsgRecord(nil), esg...),
	}
}

// NewDefaultStore creates a store over the built-in dataset
func NewDefaultStore() *Store {
	return NewStore(defaultSales, defaultFinancials, defaultESG)
}

// Sales returns every sales transaction in stored order
func (s *Store) Sales() []SalesRecord {
	return append([]SalesRecord(nil), s.sales...)
}

// Financials returns every financial row in stored order
func (s *Store) Financials() []FinancialRecord {
	return append([]FinancialRecord(nil), s.financials...)
}

// ESG returns every ESG row in stored order
func (s *Store) ESG() []EsgRecord {
	return append([]EsgRecord(nil), s.esg...)
}

// FinancialsFor returns the financial rows of one company in stored order
func (s *Store) FinancialsFor(company string) []FinancialRecord {
	rows := make([]FinancialRecord, 0, 3)
	for _, r := range s.financials {
		if r.Company == company {
			rows = append(rows, r)
		}
	}
	return rows
}

// ESGFor returns the ESG rows of one company in stored order
func (s *Store) ESGFor(company string) []EsgRecord {
	rows := make([]EsgRecord, 0, 3)
	for _, r := range s.esg {
		if r.Company == company {
			rows = append(rows, r)
		}
	}
	return rows
}
