package rank

import "regexp"

// asinPatterns is the versioned, ordered list of textual forms an ASIN
// marker may take in the narrative. Every pattern is applied over the full
// text; matches are collected across all patterns and deduplicated in
// first-seen order. Keep the precedence stable when adding forms.
var asinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\*\*ASIN\*\*:\s*(B[0-9A-Z]{9})`),   // **ASIN**: B0XXXXXXXXX
	regexp.MustCompile(`(?i)ASIN:\s*(B[0-9A-Z]{9})`),           // ASIN: B0XXXXXXXXX
	regexp.MustCompile(`(?i)- \*\*ASIN\*\*:\s*(B[0-9A-Z]{9})`), // - **ASIN**: B0XXXXXXXXX
	regexp.MustCompile(`(?i)ASIN\s*:\s*(B[0-9A-Z]{9})`),        // ASIN : B0XXXXXXXXX
	regexp.MustCompile(`(?i)\(ASIN:\s*(B[0-9A-Z]{9})\)`),       // (ASIN: B0XXXXXXXXX)
}

// ExtractAsins recovers catalog identifiers from the narrative markdown,
// independent of how faithfully the model followed the output template.
func ExtractAsins(narrative string) []string {
	seen := make(map[string]struct{})
	var asins []string

	for _, pattern := range asinPatterns {
		for _, match := range pattern.FindAllStringSubmatch(narrative, -1) {
			asin := match[1]
			if _, dup := seen[asin]; dup {
				continue
			}
			seen[asin] = struct{}{}
			asins = append(asins, asin)
		}
	}

	return asins
}
