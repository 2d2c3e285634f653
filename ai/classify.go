package ai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DetectImprovementType classifies what an improvement changed, from the
// original and improved text alone. The heuristic is shared by the mock
// provider and every live adapter so the type field stays consistent
// across providers:
//
//	개선문/원문 길이 비율 > 1.5  → detail
//	개선문에만 줄바꿈이 생김      → structure
//	그 외                        → clarity
func DetectImprovementType(original, improved string) ImprovementType {
	origLen := len([]rune(original))
	if origLen > 0 && float64(len([]rune(improved)))/float64(origLen) > 1.5 {
		return ImprovementDetail
	}
	if strings.Contains(improved, "\n") && !strings.Contains(original, "\n") {
		return ImprovementStructure
	}
	return ImprovementClarity
}

// improveReason derives a human-readable reason for a model-authored
// improvement. Longer output means detail was added.
func improveReason(improved string) string {
	if len([]rune(improved)) > 100 {
		return "구체적인 세부사항과 명확한 표현을 추가했습니다."
	}
	return "명확성을 개선했습니다."
}

// tagsPayload is the fixed structured format live providers answer
// SuggestTags in.
type tagsPayload struct {
	Tags []TagSuggestion `json:"tags"`
}

// parseTagsResponse decodes a completion into tag suggestions sorted by
// confidence descending. A malformed completion is a provider error.
func parseTagsResponse(provider, raw string) ([]TagSuggestion, error) {
	var payload tagsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%s: parse tags response: %w", provider, err)
	}
	suggestions := payload.Tags
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	return suggestions, nil
}

// parseStructureResponse decodes a completion into an outline. A malformed
// completion is a provider error.
func parseStructureResponse(provider, raw string) (*StructureResult, error) {
	var result StructureResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%s: parse structure response: %w", provider, err)
	}
	return &result, nil
}
