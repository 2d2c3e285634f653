package ai

import "context"

// ProviderKind names a concrete provider implementation.
type ProviderKind string

const (
	ProviderOpenAI    ProviderKind = "openai"
	ProviderAnthropic ProviderKind = "anthropic"
	ProviderGemini    ProviderKind = "gemini"
	ProviderMock      ProviderKind = "mock"
)

// Tone selects the writing register of text improvement.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneAcademic     Tone = "academic"
)

// ImprovementType classifies what an improvement changed about the text.
type ImprovementType string

const (
	ImprovementClarity     ImprovementType = "clarity"
	ImprovementDetail      ImprovementType = "detail"
	ImprovementStructure   ImprovementType = "structure"
	ImprovementGrammar     ImprovementType = "grammar"
	ImprovementStyle       ImprovementType = "style"
	ImprovementConciseness ImprovementType = "conciseness"
)

// ImproveRequest asks a provider to turn a draft sentence into clearer prose.
type ImproveRequest struct {
	Text    string `json:"text"`
	Context string `json:"context,omitempty"`
	Tone    Tone   `json:"tone,omitempty"`
}

// ImproveResult is the provider's answer to an ImproveRequest.
type ImproveResult struct {
	Improved string          `json:"improved"`
	Reason   string          `json:"reason"`
	Type     ImprovementType `json:"type"`
}

// TagSuggestion is an ephemeral tag proposal. Only Tag survives into a
// post's tag set; Confidence and Reason are presentation hints.
type TagSuggestion struct {
	Tag        string  `json:"tag"`
	Confidence float64 `json:"confidence"` // [0,1]
	Reason     string  `json:"reason"`
}

// StructureRequest asks a provider to propose a post outline from a free
// text description. Input length validation (>= 3 trimmed characters) is
// the HTTP boundary's job, not the provider's.
type StructureRequest struct {
	UserInput string `json:"userInput"`
	Context   string `json:"context,omitempty"`
}

// StructureSection is one ordered unit of a proposed outline.
type StructureSection struct {
	Order       int    `json:"order"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Placeholder string `json:"placeholder"`
}

// StructureResult is a proposed outline with the detected post type.
type StructureResult struct {
	PostType  string             `json:"postType"`
	Reasoning string             `json:"reasoning"`
	Sections  []StructureSection `json:"sections"`
}

// Service 는 글쓰기 보조 provider 의 공통 계약이다.
// mock / openai / anthropic / gemini 네 구현이 이 인터페이스를 공유한다.
type Service interface {
	// Name identifies the provider, e.g. for AI provenance labels.
	Name() string

	// ImproveText rewrites the request text as clearer prose.
	ImproveText(ctx context.Context, req ImproveRequest) (*ImproveResult, error)

	// SuggestTags derives topical tag suggestions from a title+content pair,
	// sorted by confidence descending. Providers may return more than the
	// caller will keep; truncation is the caller's job.
	SuggestTags(ctx context.Context, title, content string) ([]TagSuggestion, error)

	// GenerateStructure proposes an ordered section outline.
	GenerateStructure(ctx context.Context, req StructureRequest) (*StructureResult, error)
}
