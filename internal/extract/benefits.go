package extract

import "strings"

// BenefitsExtractor substring-matches the fixed benefit keyword list against
// lowercased text, dedup by keyword.
type BenefitsExtractor struct{}

func (BenefitsExtractor) Field() Field { return FieldBenefits }

func (BenefitsExtractor) Extract(text string, _ Context) FieldCandidate {
	lower := strings.ToLower(text)
	var found []string
	for _, keyword := range benefitKeywords {
		if strings.Contains(lower, keyword) {
			found = append(found, keyword)
		}
	}
	found = dedupePreserveOrder(found, len(found))
	return FieldCandidate{
		Field:  FieldBenefits,
		Values: found,
		Found:  len(found) > 0,
	}
}
