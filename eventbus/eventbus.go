// Package eventbus는 포스트 라이프사이클 이벤트의 발행을 추상화합니다.
// Kafka가 구성되지 않은 로컬 환경에서는 NoopPublisher가 사용됩니다.
package eventbus

import (
	"context"
)

// Publisher 인터페이스는 이벤트 발행의 추상화를 정의합니다.
type Publisher interface {
	Publish(ctx context.Context, topic string, event interface{}) error
	Close()
}

// 포스트 라이프사이클 이벤트가 발행되는 토픽입니다.
const TopicPostLifecycle = "studyblog.post_lifecycle"

// NoopPublisher는 브로커가 구성되지 않았을 때 사용하는 무동작 구현체입니다.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (n *NoopPublisher) Publish(ctx context.Context, topic string, event interface{}) error {
	return nil
}

func (n *NoopPublisher) Close() {}
