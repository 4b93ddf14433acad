package domain

// Tier is the subscription level gating feature availability.
type Tier string

const (
	TierFree       Tier = "free"
	TierLite       Tier = "lite"
	TierEnterprise Tier = "enterprise"
)

// Feature identifiers form a closed vocabulary; anything outside it is
// simply never entitled.
const (
	FeatureBankImport       = "bank-import"
	FeatureManualTagging    = "manual-tagging"
	FeatureGSTCalculation   = "gst-calculation"
	FeatureTaxReports       = "tax-reports"
	FeatureInvoices         = "invoices"
	FeatureAIClassification = "ai-classification"
	FeatureChatbot          = "chatbot"
	FeatureEmailSupport     = "email-support"
	FeatureContracts        = "contracts"
	FeatureTimesheets       = "timesheets"
	FeaturePayroll          = "payroll"
	FeatureAIQnA            = "ai-qna"
	FeatureChatDatabase     = "chat-database"
	FeatureBankIntegration  = "bank-integration"
	FeatureIRDIntegration   = "ird-integration"
)

var freeFeatures = []string{
	FeatureBankImport,
	FeatureManualTagging,
	FeatureGSTCalculation,
	FeatureTaxReports,
	FeatureInvoices,
}

var liteExtras = []string{
	FeatureAIClassification,
	FeatureChatbot,
	FeatureEmailSupport,
}

var enterpriseExtras = []string{
	FeatureContracts,
	FeatureTimesheets,
	FeaturePayroll,
	FeatureAIQnA,
	FeatureChatDatabase,
	FeatureBankIntegration,
	FeatureIRDIntegration,
}

// tierFeatures is built by accumulation so that each tier is a strict
// superset of the one below it. Upgrade messaging in the clients relies
// on this monotonicity.
var tierFeatures = map[Tier][]string{
	TierFree:       freeFeatures,
	TierLite:       concat(freeFeatures, liteExtras),
	TierEnterprise: concat(freeFeatures, liteExtras, enterpriseExtras),
}

func concat(sets ...[]string) []string {
	var out []string
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// ParseTier validates a raw tier value. Unknown tiers are a caller
// contract violation and fail fast rather than defaulting.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(s); t {
	case TierFree, TierLite, TierEnterprise:
		return t, nil
	default:
		return "", ErrUnknownTier
	}
}

// HasAccess reports whether the tier is entitled to the named feature.
// Unknown features resolve to false; an unparsed Tier value is entitled
// to nothing (fails closed).
func (t Tier) HasAccess(feature string) bool {
	for _, f := range tierFeatures[t] {
		if f == feature {
			return true
		}
	}
	return false
}

// Features returns a copy of the tier's entitled feature set.
func (t Tier) Features() []string {
	src := tierFeatures[t]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
