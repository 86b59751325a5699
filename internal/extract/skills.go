package extract

import "github.com/manasvohal/aiInternshipTracker/constants"

// SkillsExtractor matches the fixed skill vocabulary case-insensitively on
// word boundaries, preserving discovery order with exact-string dedup.
type SkillsExtractor struct{}

func (SkillsExtractor) Field() Field { return FieldSkills }

func (SkillsExtractor) Extract(text string, _ Context) FieldCandidate {
	var found []string
	for _, category := range []string{"languages", "frameworks", "databases", "cloud", "tools"} {
		for _, skill := range skillVocabulary[category] {
			if containsWordFold(text, skill) {
				found = append(found, skill)
			}
		}
	}
	found = dedupePreserveOrder(found, constants.MaxSkills)
	return FieldCandidate{
		Field:  FieldSkills,
		Values: found,
		Found:  len(found) > 0,
	}
}
