package records

// ============================================================================
// Record Types
// ============================================================================

// SalesRecord is one B2B transaction between a seller and a buyer
type SalesRecord struct {
	Seller          string  `json:"Seller_Company"`
	Buyer           string  `json:"Buyer_Company"`
	Amount          float64 `json:"Sales_Amount"`
	TransactionDate string  `json:"Transaction_Date"`
	Region          string  `json:"Region"`
	PaymentTerms    string  `json:"Payment_Terms"`
	ProductCategory string  `json:"Product_Category"`
	FutureProspects string  `json:"Future_Prospects"`
}

// FinancialRecord is one company-year of financial statements
type FinancialRecord struct {
	Year                  int     `json:"Year"`
	Company               string  `json:"Company"`
	Revenue               float64 `json:"Revenue"`
	NetIncome             float64 `json:"Net_Income"`
	TotalAssets           float64 `json:"Total_Assets"`
	TotalLiabilities      float64 `json:"Total_Liabilities"`
	Equity                float64 `json:"Equity"`
	SharesOutstanding     int64   `json:"Shares_Outstanding"`
	StockPrice            float64 `json:"Stock_Price"`
	RDExpenditure         float64 `json:"R&D_Expenditure"`
	FutureGrowthProspects string  `json:"Future_Growth_Prospects"`
}

// EsgRecord is one company-year of ESG scores
type EsgRecord struct {
	Year                   int     `json:"Year"`
	Company                string  `json:"Company"`
	EnvironmentalScore     float64 `json:"Environmental_Score"`
	SocialScore            float64 `json:"Social_Score"`
	GovernanceScore        float64 `json:"Governance_Score"`
	OverallScore           float64 `json:"Overall_ESG_Score"`
	CO2EmissionsTons       float64 `json:"CO2_Emissions (tons)"`
	DiversityInitiatives   string  `json:"Diversity_Initiatives"`
	GovernanceTransparency string  `json:"Governance_Transparency"`
}
