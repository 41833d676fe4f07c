package config

// Fixed relative paths the maintenance tools operate on. The scripts are
// run from the site root; there is no configuration file and no
// environment lookup.
const (
	DefaultDataFile     = "data/articles.json"
	DefaultKnowledgeDir = "knowledge"

	// KnowledgePrefix marks internal article urls. Urls under the
	// services path link to service pages and are not id-addressed.
	KnowledgePrefix = "knowledge/"
	ServicesPrefix  = "../services/"
)

// StandardIDMapping returns the hand-authored table migrating the legacy
// mixed-style ids to the <category>-<kind>-<topic> scheme. Old ids are
// disjoint from new ids; the table is validated before every run.
func StandardIDMapping() map[string]string {
	return map[string]string{
		// Business
		"japan-company-registration-2024": "business-article-company-registration",
		"japan-business-setup-guide":      "business-article-setup-guide",
		"business-faq-001":                "business-faq-restaurant",
		"business-faq-002":                "business-faq-beauty-salon",

		// Visa
		"japan-visa-guide-2024":  "visa-article-management-guide",
		"japan-high-talent-visa": "visa-article-talent-points",
		"visa-faq-001":           "visa-faq-renewal",

		// Tax
		"japan-tax-guide-2024":   "tax-article-declaration-guide",
		"japan-consumption-tax":  "tax-article-consumption-tax",
		"tax-faq-001":            "tax-faq-registration",
		"tax-faq-002":            "tax-faq-subsidy-application",

		// Subsidy
		"japan-it-subsidy-2024": "subsidy-article-it-digital",
		"japan-green-subsidy":   "subsidy-article-green-environmental",
		"subsidy-faq-001":       "subsidy-faq-success-tips",

		// Legal
		"japan-labor-law-guide-2024":     "legal-article-labor-law",
		"japan-personal-data-protection": "legal-article-data-protection",
		"legal-faq-001":                  "legal-faq-contract",
		"legal-faq-002":                  "legal-faq-ip-protection",

		// Life
		"japan-banking-guide": "life-article-banking",
		"japan-housing-guide": "life-article-housing",
		"life-faq-001":        "life-faq-banking-account",
	}
}
