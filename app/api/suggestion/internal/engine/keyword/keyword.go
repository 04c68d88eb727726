package keyword

import (
	"strings"

	"KasumiAI/app/api/suggestion/internal/engine/types"
)

const maxFeatureTerms = 2

// Synthesize builds the catalog search keyword from structured requirements.
// Field order is fixed (category, brand, size, color, then up to two
// features) so the same requirements always produce the same keyword.
func Synthesize(req types.Requirements) string {
	parts := []string{req.Category}

	if req.Brand != "" {
		parts = append(parts, req.Brand)
	}
	if req.Size != "" {
		parts = append(parts, req.Size)
	}
	if req.Color != "" {
		parts = append(parts, req.Color)
	}

	features := req.Features
	if len(features) > maxFeatureTerms {
		features = features[:maxFeatureTerms]
	}
	parts = append(parts, features...)

	return strings.Join(parts, " ")
}
