package ai

import "fmt"

// System prompts shared by all live providers. Each operation is a single
// completion request against a fixed instruction; the tone variant is
// selected per request for text improvement.

const improveInstructionFmt = `You are a writing assistant for technical learning content.
Your goal: Improve clarity, add specific details, and make content more engaging.

Tone: %s

Guidelines:
1. Add specific details (timeframes, technologies, metrics)
2. Use clear, concrete language
3. Maintain the original intent
4. Keep it concise but informative
5. Write in Korean (한국어)

Respond with ONLY the improved text, no explanations.`

var toneGuides = map[Tone]string{
	ToneProfessional: "전문적이고 명확한 표현을 사용하세요. 기술 블로그에 적합한 톤입니다.",
	ToneCasual:       "친근하고 대화하듯 자연스러운 표현을 사용하세요. 개인 블로그에 적합합니다.",
	ToneAcademic:     "학술적이고 정확한 표현을 사용하세요. 연구나 심화 학습 내용에 적합합니다.",
}

// improveInstruction builds the text-improvement system prompt for a tone.
// Unknown or empty tones fall back to professional.
func improveInstruction(tone Tone) string {
	guide, ok := toneGuides[tone]
	if !ok {
		guide = toneGuides[ToneProfessional]
	}
	return fmt.Sprintf(improveInstructionFmt, guide)
}

// improveUserPrompt includes the optional caller context ahead of the text.
func improveUserPrompt(req ImproveRequest) string {
	if req.Context != "" {
		return fmt.Sprintf("Context: %s\n\nText to improve: %s", req.Context, req.Text)
	}
	return "Text to improve: " + req.Text
}

// TAGS_INSTRUCTION asks for tag suggestions against a closed vocabulary in a
// fixed JSON shape. The response MUST NOT be wrapped in a markdown code block.
const TAGS_INSTRUCTION = `You are an expert at categorizing learning and technical content.
Given a title and content, suggest relevant tags from this list:
[JavaScript, TypeScript, React, Next.js, Python, AI/ML, 백엔드, 프론트엔드, 데이터베이스, 클라우드, DevOps, 보안, 성능최적화, 디버깅, 리팩토링, 테스트]

Respond in JSON format:
{
  "tags": [
    {"tag": "tag-name", "confidence": 0.95, "reason": "why this tag fits"},
    ...
  ]
}
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `).
The response should contain ONLY the raw JSON string.`

// STRUCTURE_INSTRUCTION asks for a 3-5 section outline classified into one of
// five post types, in a fixed JSON shape.
const STRUCTURE_INSTRUCTION = `You are an expert content structure advisor for technical and learning blogs.
Your task is to analyze the user's brief description and create a customized post structure.

Consider these post types:
- 학습 경험 (Learning Experience): sharing what was learned
- 프로젝트 후기 (Project Review): reflecting on a project
- 튜토리얼 (Tutorial): step-by-step guide
- 문제 해결 (Problem Solving): troubleshooting story
- 일반 글 (General): flexible format

Respond in JSON format:
{
  "postType": "detected type in Korean",
  "reasoning": "why this structure fits (in Korean)",
  "sections": [
    {
      "order": 1,
      "title": "section title in Korean",
      "description": "what to write here (in Korean)",
      "placeholder": "example text (in Korean)"
    },
    ...
  ]
}

Guidelines:
- Create 3-5 sections
- Each section should have clear purpose
- Use Korean language
- Keep placeholders concrete and helpful
You MUST NOT wrap the JSON output in a markdown code block (e.g. ` + "```json ... ```" + `).
The response should contain ONLY the raw JSON string.`

// structureUserPrompt includes the optional caller context after the input.
func structureUserPrompt(req StructureRequest) string {
	if req.Context != "" {
		return fmt.Sprintf("User input: %s\n\nContext: %s", req.UserInput, req.Context)
	}
	return "User input: " + req.UserInput
}

// tagsUserPrompt formats the title+content pair for the tag prompt.
func tagsUserPrompt(title, content string) string {
	return fmt.Sprintf("Title: %s\n\nContent: %s", title, content)
}
