package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	PostPublished EventType = "post.published"
	PostDeleted   EventType = "post.deleted"
)

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// NewBaseEvent 공통 필드를 채운 BaseEvent를 생성합니다.
func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "studyblog-api",
		Version:   "1.0",
	}
}

// PostPublishedEvent 포스트가 발행 상태로 저장되었을 때 발행되는 이벤트
type PostPublishedEvent struct {
	BaseEvent
	PostID   string   `json:"post_id"`
	AuthorID string   `json:"author_id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Tags     []string `json:"tags"`
}

// PostDeletedEvent 포스트 삭제 완료 이벤트
type PostDeletedEvent struct {
	BaseEvent
	PostID string `json:"post_id"`
	Slug   string `json:"slug"`
}

// SerializeEvent 이벤트를 JSON으로 직렬화하고 타입 정보 반환
func SerializeEvent(event interface{}) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case PostPublishedEvent:
		eventType = e.Type
	case PostDeletedEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, eventType, nil
}

// DeserializeEvent 이벤트 타입에 따라 적절한 구조체로 역직렬화
func DeserializeEvent(eventType EventType, data []byte) (interface{}, error) {
	var event interface{}

	switch eventType {
	case PostPublished:
		event = &PostPublishedEvent{}
	case PostDeleted:
		event = &PostDeletedEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}
