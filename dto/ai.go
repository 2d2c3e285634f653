package dto

// ImproveTextRequest asks the AI layer to rewrite a passage.
type ImproveTextRequest struct {
	Text    string `json:"text" binding:"required"`
	Context string `json:"context"`
	Tone    string `json:"tone"`
}

// ImproveTextResponse carries the rewritten passage and a short rationale.
type ImproveTextResponse struct {
	ImprovedText string `json:"improvedText"`
	Reason       string `json:"reason"`
	Type         string `json:"type"`
}

// SuggestTagsRequest asks for tags matching a title/content pair.
type SuggestTagsRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SuggestTagsResponse returns at most five tag names, best first.
type SuggestTagsResponse struct {
	Tags []string `json:"tags"`
}

// GenerateStructureRequest asks for a post outline from a rough idea.
type GenerateStructureRequest struct {
	UserInput string `json:"userInput" binding:"required"`
	Context   string `json:"context"`
}

// StructureSectionDTO is one ordered section of a generated outline.
type StructureSectionDTO struct {
	Order       int    `json:"order"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Placeholder string `json:"placeholder"`
}

// GenerateStructureResponse returns the detected post type and its sections.
type GenerateStructureResponse struct {
	PostType  string                `json:"postType"`
	Reasoning string                `json:"reasoning"`
	Sections  []StructureSectionDTO `json:"sections"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}
