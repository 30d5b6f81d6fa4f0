package topics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serverless/stream-functions/internal/topics"
)

func TestIsValid(t *testing.T) {
	valid := []string{
		"my-topic",
		"my_topic.v2",
		"persistent://tenant/namespace/topic",
		"non-persistent://tenant/namespace/topic",
	}
	for _, topic := range valid {
		assert.True(t, topics.IsValid(topic), topic)
	}

	invalid := []string{
		"",
		"my topic",
		"persistent://tenant/topic",
		"persistent://tenant/namespace/",
		"memory://tenant/namespace/topic",
	}
	for _, topic := range invalid {
		assert.False(t, topics.IsValid(topic), topic)
	}
}
