package records

const (
	companyTechInnovators  = "Tech Innovators Inc"
	companyGreenEnergy     = "Green Energy Corp"
	companyFinTechGlobal   = "FinTech Global"
	companyHealthWorks     = "HealthWorks Ltd"
	companyRetailSolutions = "Retail Solutions LLC"
	companySmartHome       = "SmartHome Devices Co"
	companyAgriTech        = "AgriTech Partners"
)

// Built-in dataset served by the API. Rows keep their source order.

var defaultSales = []SalesRecord{
	{Seller: companyTechInnovators, Buyer: companyRetailSolutions, Amount: 50000, TransactionDate: "2024-01-15", Region: "North America", PaymentTerms: "Net 30", ProductCategory: "Electronics", FutureProspects: "Expansion Potential"},
	{Seller: companyGreenEnergy, Buyer: companyHealthWorks, Amount: 75000, TransactionDate: "2024-02-20", Region: "Europe", PaymentTerms: "Net 45", ProductCategory: "Renewable Energy", FutureProspects: "Strong"},
	{Seller: companyTechInnovators, Buyer: companySmartHome, Amount: 120000, TransactionDate: "2024-03-05", Region: "Asia", PaymentTerms: "Net 30", ProductCategory: "IoT Devices", FutureProspects: "Growing Market"},
	{Seller: companyFinTechGlobal, Buyer: companyRetailSolutions, Amount: 60000, TransactionDate: "2024-04-10", Region: "North America", PaymentTerms: "Net 60", ProductCategory: "Financial Software", FutureProspects: "Stable"},
	{Seller: companyGreenEnergy, Buyer: companyAgriTech, Amount: 45000, TransactionDate: "2024-05-18", Region: "Europe", PaymentTerms: "Net 30", ProductCategory: "AgriTech", FutureProspects: "Emerging Opportunities"},
}

var defaultFinancials = []FinancialRecord{
	{Year: 2021, Company: companyTechInnovators, Revenue: 500000, NetIncome: 50000, TotalAssets: 1500000, TotalLiabilities: 700000, Equity: 800000, SharesOutstanding: 1000000, StockPrice: 50, RDExpenditure: 100000, FutureGrowthProspects: "High"},
	{Year: 2022, Company: companyTechInnovators, Revenue: 600000, NetIncome: 70000, TotalAssets: 1600000, TotalLiabilities: 750000, Equity: 850000, SharesOutstanding: 1050000, StockPrice: 55, RDExpenditure: 120000, FutureGrowthProspects: "High"},
	{Year: 2023, Company: companyTechInnovators, Revenue: 650000, NetIncome: 80000, TotalAssets: 1700000, TotalLiabilities: 800000, Equity: 900000, SharesOutstanding: 1100000, StockPrice: 60, RDExpenditure: 130000, FutureGrowthProspects: "Very High"},
	{Year: 2021, Company: companyGreenEnergy, Revenue: 450000, NetIncome: 40000, TotalAssets: 1400000, TotalLiabilities: 600000, Equity: 800000, SharesOutstanding: 950000, StockPrice: 40, RDExpenditure: 80000, FutureGrowthProspects: "Medium"},
	{Year: 2022, Company: companyGreenEnergy, Revenue: 550000, NetIncome: 60000, TotalAssets: 1500000, TotalLiabilities: 650000, Equity: 850000, SharesOutstanding: 1000000, StockPrice: 45, RDExpenditure: 90000, FutureGrowthProspects: "High"},
	{Year: 2023, Company: companyGreenEnergy, Revenue: 600000, NetIncome: 70000, TotalAssets: 1600000, TotalLiabilities: 700000, Equity: 900000, SharesOutstanding: 1050000, StockPrice: 50, RDExpenditure: 100000, FutureGrowthProspects: "Very High"},
	{Year: 2021, Company: companyHealthWorks, Revenue: 700000, NetIncome: 80000, TotalAssets: 1800000, TotalLiabilities: 900000, Equity: 900000, SharesOutstanding: 1500000, StockPrice: 60, RDExpenditure: 120000, FutureGrowthProspects: "High"},
	{Year: 2022, Company: companyHealthWorks, Revenue: 800000, NetIncome: 90000, TotalAssets: 1900000, TotalLiabilities: 950000, Equity: 950000, SharesOutstanding: 1550000, StockPrice: 65, RDExpenditure: 130000, FutureGrowthProspects: "Very High"},
	{Year: 2023, Company: companyHealthWorks, Revenue: 850000, NetIncome: 100000, TotalAssets: 2000000, TotalLiabilities: 1000000, Equity: 1000000, SharesOutstanding: 1600000, StockPrice: 70, RDExpenditure: 140000, FutureGrowthProspects: "Very High"},
	{Year: 2021, Company: companyFinTechGlobal, Revenue: 600000, NetIncome: 50000, TotalAssets: 1600000, TotalLiabilities: 800000, Equity: 800000, SharesOutstanding: 1200000, StockPrice: 55, RDExpenditure: 90000, FutureGrowthProspects: "Medium"},
	{Year: 2022, Company: companyFinTechGlobal, Revenue: 700000, NetIncome: 60000, TotalAssets: 1700000, TotalLiabilities: 850000, Equity: 850000, SharesOutstanding: 1250000, StockPrice: 60, RDExpenditure: 100000, FutureGrowthProspects: "High"},
	{Year: 2023, Company: companyFinTechGlobal, Revenue: 750000, NetIncome: 70000, TotalAssets: 1800000, TotalLiabilities: 900000, Equity: 900000, SharesOutstanding: 1300000, StockPrice: 65, RDExpenditure: 110000, FutureGrowthProspects: "High"},
}

var defaultESG = []EsgRecord{
	{Year: 2021, Company: companyTechInnovators, EnvironmentalScore: 75, SocialScore: 80, GovernanceScore: 70, OverallScore: 75, CO2EmissionsTons: 5000, DiversityInitiatives: "Employee Diversity", GovernanceTransparency: "High"},
	{Year: 2022, Company: companyTechInnovators, EnvironmentalScore: 78, SocialScore: 82, GovernanceScore: 72, OverallScore: 77, CO2EmissionsTons: 4800, DiversityInitiatives: "Gender Equality", GovernanceTransparency: "High"},
	{Year: 2023, Company: companyTechInnovators, EnvironmentalScore: 80, SocialScore: 85, GovernanceScore: 75, OverallScore: 80, CO2EmissionsTons: 4600, DiversityInitiatives: "Inclusive Culture", GovernanceTransparency: "Very High"},
	{Year: 2021, Company: companyGreenEnergy, EnvironmentalScore: 80, SocialScore: 85, GovernanceScore: 75, OverallScore: 80, CO2EmissionsTons: 4000, DiversityInitiatives: "Sustainable Sourcing", GovernanceTransparency: "High"},
	{Year: 2022, Company: companyGreenEnergy, EnvironmentalScore: 82, SocialScore: 88, GovernanceScore: 78, OverallScore: 82, CO2EmissionsTons: 3800, DiversityInitiatives: "Community Engagement", GovernanceTransparency: "High"},
	{Year: 2023, Company: companyGreenEnergy, EnvironmentalScore: 85, SocialScore: 90, GovernanceScore: 80, OverallScore: 85, CO2EmissionsTons: 3600, DiversityInitiatives: "Green Initiatives", GovernanceTransparency: "Very High"},
	{Year: 2021, Company: companyHealthWorks, EnvironmentalScore: 70, SocialScore: 75, GovernanceScore: 65, OverallScore: 70, CO2EmissionsTons: 5500, DiversityInitiatives: "Health & Safety", GovernanceTransparency: "Medium"},
	{Year: 2022, Company: companyHealthWorks, EnvironmentalScore: 72, SocialScore: 78, GovernanceScore: 68, OverallScore: 73, CO2EmissionsTons: 5300, DiversityInitiatives: "Employee Well-being", GovernanceTransparency: "High"},
	{Year: 2023, Company: companyHealthWorks, EnvironmentalScore: 75, SocialScore: 80, GovernanceScore: 70, OverallScore: 75, CO2EmissionsTons: 5100, DiversityInitiatives: "Community Support", GovernanceTransparency: "High"},
	{Year: 2021, Company: companyFinTechGlobal, EnvironmentalScore: 68, SocialScore: 70, GovernanceScore: 60, OverallScore: 66, CO2EmissionsTons: 6000, DiversityInitiatives: "Ethical Practices", GovernanceTransparency: "Medium"},
	{Year: 2022, Company: companyFinTechGlobal, EnvironmentalScore: 70, SocialScore: 72, GovernanceScore: 65, OverallScore: 69, CO2EmissionsTons: 5800, DiversityInitiatives: "Governance Training", GovernanceTransparency: "High"},
	{Year: 2023, Company: companyFinTechGlobal, EnvironmentalScore: 73, SocialScore: 75, GovernanceScore: 68, OverallScore: 72, CO2EmissionsTons: 5600, DiversityInitiatives: "Transparent Reporting", GovernanceTransparency: "High"},
}
