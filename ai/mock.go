package ai

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// MockService is the deterministic, network-free provider. It is both the
// development provider and the universal fallback when a live provider
// cannot be constructed. Which tags and sections it returns for a given
// input is fully deterministic; only tag confidence values are randomized.
type MockService struct {
	// Delay simulates live-provider latency for UI testing. Zero disables it.
	Delay time.Duration
}

// NewMockService returns a mock provider with the given simulated delay.
func NewMockService(delay time.Duration) *MockService {
	return &MockService{Delay: delay}
}

func (m *MockService) Name() string { return "mock" }

// sleep waits out the artificial delay, honoring cancellation.
func (m *MockService) sleep(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(m.Delay):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mock: %w", ctx.Err())
	}
}

// cannedImprovement is one known-phrase entry of the improvement table.
type cannedImprovement struct {
	phrase string
	result ImproveResult
}

// 알려진 문장에 대한 고정 개선안. 부분 문자열 일치로 조회한다.
var cannedImprovements = []cannedImprovement{
	{
		phrase: "저는 파이썬을 배웠어요",
		result: ImproveResult{
			Improved: "Python 기초 문법을 3주 동안 학습했으며, 특히 객체지향 프로그래밍 개념을 집중적으로 공부했습니다.",
			Reason:   "구체적인 기간과 학습 내용을 명시하여 전문성을 높였습니다.",
			Type:     ImprovementClarity,
		},
	},
	{
		phrase: "성능이 좋아졌어요",
		result: ImproveResult{
			Improved: "모델의 정확도가 72%에서 89%로 17%p 향상되었습니다.",
			Reason:   "정량적 지표를 사용하여 객관적으로 표현했습니다.",
			Type:     ImprovementClarity,
		},
	},
}

func (m *MockService) ImproveText(ctx context.Context, req ImproveRequest) (*ImproveResult, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}

	for _, c := range cannedImprovements {
		if strings.Contains(req.Text, c.phrase) {
			result := c.result
			return &result, nil
		}
	}

	// 기본 개선안: 원문 뒤에 일반적인 보완 힌트를 덧붙인다.
	improved := req.Text + " (더 구체적인 내용을 추가하면 좋을 것 같습니다)"
	return &ImproveResult{
		Improved: improved,
		Reason:   "문장을 더 상세하게 작성하여 독자의 이해를 돕습니다.",
		Type:     DetectImprovementType(req.Text, improved),
	}, nil
}

// tagKeywordEntry maps a canonical tag to its keyword variants, including
// transliterations. Entry order is fixed so results are reproducible.
type tagKeywordEntry struct {
	tag      string
	keywords []string
}

var tagKeywords = []tagKeywordEntry{
	{"Python", []string{"python", "파이썬"}},
	{"JavaScript", []string{"javascript", "js", "자바스크립트"}},
	{"Next.js", []string{"next.js", "nextjs", "넥스트"}},
	{"React", []string{"react", "리액트"}},
	{"AI", []string{"ai", "인공지능", "머신러닝", "딥러닝"}},
	{"Machine Learning", []string{"machine learning", "ml", "머신러닝"}},
	{"Deep Learning", []string{"deep learning", "딥러닝", "neural network"}},
	{"GPT", []string{"gpt", "chatgpt", "openai"}},
	{"Claude", []string{"claude", "anthropic"}},
	{"Tutorial", []string{"tutorial", "가이드", "튜토리얼"}},
	{"Experience", []string{"경험", "experience", "후기"}},
	{"Project", []string{"project", "프로젝트"}},
}

func (m *MockService) SuggestTags(ctx context.Context, title, content string) ([]TagSuggestion, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}

	text := strings.ToLower(title + " " + content)

	var suggestions []TagSuggestion
	for _, entry := range tagKeywords {
		// 태그당 첫 번째로 일치한 키워드만 사용한다 (중복 태그 방지).
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				suggestions = append(suggestions, TagSuggestion{
					Tag:        entry.tag,
					Confidence: 0.7 + rand.Float64()*0.3,
					Reason:     fmt.Sprintf("'%s' 키워드가 포함되어 있습니다", keyword),
				})
				break
			}
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	return suggestions, nil
}

// containsAny reports whether s contains any of the given keywords.
func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func (m *MockService) GenerateStructure(ctx context.Context, req StructureRequest) (*StructureResult, error) {
	if err := m.sleep(ctx); err != nil {
		return nil, err
	}

	input := strings.ToLower(req.UserInput)

	// 카테고리는 학습 → 프로젝트 → 문제해결 → 일반 순서로 검사하며,
	// 먼저 일치한 카테고리가 선택된다.
	switch {
	case containsAny(input, "배웠", "학습", "공부"):
		return learningTemplate(), nil
	case containsAny(input, "프로젝트", "만들었", "개발"):
		return projectTemplate(), nil
	case containsAny(input, "버그", "에러", "해결", "문제"):
		return troubleshootingTemplate(), nil
	default:
		return genericTemplate(), nil
	}
}

func learningTemplate() *StructureResult {
	return &StructureResult{
		PostType:  "학습 경험",
		Reasoning: "새로운 기술이나 개념을 학습한 경험을 공유하는 글로 보입니다.",
		Sections: []StructureSection{
			{
				Order:       1,
				Title:       "학습 배경",
				Description: "왜 이 기술을 배우게 되었나요?",
				Placeholder: "예: 프로젝트에서 상태 관리가 복잡해져서 Redux를 배우기로 결정했습니다...",
			},
			{
				Order:       2,
				Title:       "학습 과정",
				Description: "어떻게 학습했나요? 어떤 자료를 참고했나요?",
				Placeholder: "예: 공식 문서를 먼저 읽고, 유튜브 강의를 따라하면서 실습했습니다...",
			},
			{
				Order:       3,
				Title:       "실습 및 적용",
				Description: "학습한 내용을 어떻게 적용해봤나요?",
				Placeholder: "예: 간단한 Todo 앱을 만들어보면서 Redux의 핵심 개념을 이해했습니다...",
			},
			{
				Order:       4,
				Title:       "배운 점과 느낀 점",
				Description: "어떤 인사이트를 얻었나요? 어려웠던 점은?",
				Placeholder: "예: 처음엔 보일러플레이트가 많아 복잡했지만, 상태 흐름이 명확해지는 장점을 느꼈습니다...",
			},
		},
	}
}

func projectTemplate() *StructureResult {
	return &StructureResult{
		PostType:  "프로젝트 후기",
		Reasoning: "프로젝트 개발 경험을 회고하는 글로 보입니다.",
		Sections: []StructureSection{
			{
				Order:       1,
				Title:       "프로젝트 소개",
				Description: "어떤 프로젝트인가요? 왜 시작했나요?",
				Placeholder: "예: 개인 블로그를 Next.js로 만들었습니다. SEO와 성능을 개선하고 싶었습니다...",
			},
			{
				Order:       2,
				Title:       "기술 스택 선택",
				Description: "어떤 기술을 사용했고, 왜 선택했나요?",
				Placeholder: "예: Next.js 14 App Router, TypeScript, Tailwind CSS를 사용했습니다...",
			},
			{
				Order:       3,
				Title:       "주요 기능 및 구현",
				Description: "핵심 기능을 어떻게 구현했나요?",
				Placeholder: "예: MDX로 블로그 포스트를 작성하고, gray-matter로 메타데이터를 파싱했습니다...",
			},
			{
				Order:       4,
				Title:       "트러블슈팅",
				Description: "어떤 문제를 겪었고 어떻게 해결했나요?",
				Placeholder: "예: 빌드 시 이미지 최적화 오류가 발생해서 next/image 설정을 수정했습니다...",
			},
			{
				Order:       5,
				Title:       "회고 및 개선 방향",
				Description: "배운 점과 앞으로의 계획은?",
				Placeholder: "예: TypeScript를 더 깊이 이해하게 되었고, 다음엔 테스트 코드를 추가하고 싶습니다...",
			},
		},
	}
}

func troubleshootingTemplate() *StructureResult {
	return &StructureResult{
		PostType:  "문제 해결 과정",
		Reasoning: "특정 문제를 해결한 경험을 공유하는 글로 보입니다.",
		Sections: []StructureSection{
			{
				Order:       1,
				Title:       "문제 상황",
				Description: "어떤 문제가 발생했나요?",
				Placeholder: "예: 프로덕션 환경에서만 API 호출이 실패하는 문제가 발생했습니다...",
			},
			{
				Order:       2,
				Title:       "원인 분석",
				Description: "어떻게 원인을 찾았나요?",
				Placeholder: "예: 브라우저 개발자 도구와 서버 로그를 확인하면서 CORS 설정 문제임을 발견했습니다...",
			},
			{
				Order:       3,
				Title:       "해결 방법",
				Description: "어떻게 해결했나요? 코드나 설정 변경 내용은?",
				Placeholder: "예: Next.js API 라우트에 CORS 헤더를 추가하여 문제를 해결했습니다...",
			},
			{
				Order:       4,
				Title:       "배운 점 및 예방책",
				Description: "이 경험에서 무엇을 배웠나요?",
				Placeholder: "예: 로컬과 프로덕션 환경의 차이를 항상 고려해야 한다는 것을 배웠습니다...",
			},
		},
	}
}

func genericTemplate() *StructureResult {
	return &StructureResult{
		PostType:  "일반 글",
		Reasoning: "자유로운 형식의 글로 보입니다. 기본 구조를 제안합니다.",
		Sections: []StructureSection{
			{
				Order:       1,
				Title:       "소개",
				Description: "어떤 이야기를 나누고 싶으신가요?",
				Placeholder: "글의 주제와 배경을 소개해주세요...",
			},
			{
				Order:       2,
				Title:       "본문",
				Description: "핵심 내용을 자유롭게 작성하세요",
				Placeholder: "상세한 내용을 작성해주세요...",
			},
			{
				Order:       3,
				Title:       "마무리",
				Description: "결론이나 배운 점을 정리하세요",
				Placeholder: "글을 마무리하고 인사이트를 공유해주세요...",
			},
		},
	}
}
