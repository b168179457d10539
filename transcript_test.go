package chat_test

import (
	"testing"

	"github.com/fwojciec/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranscript(t *testing.T) {
	t.Parallel()

	t.Run("without system prompt is empty", func(t *testing.T) {
		t.Parallel()
		tr := chat.NewTranscript("")
		assert.Equal(t, 0, tr.Len())
		assert.Equal(t, 0, tr.Turns())
		assert.Empty(t, tr.Messages())
	})

	t.Run("system prompt becomes first message", func(t *testing.T) {
		t.Parallel()
		tr := chat.NewTranscript("be brief")
		require.Equal(t, 1, tr.Len())
		assert.Equal(t, chat.SystemMessage("be brief"), tr.Messages()[0])
		assert.Equal(t, 0, tr.Turns())
	})
}

func TestTranscript_Outbound(t *testing.T) {
	t.Parallel()

	t.Run("appends user message to history", func(t *testing.T) {
		t.Parallel()
		tr := chat.NewTranscript("sys")
		tr.Record("Hello", "Hi!")
		got := tr.Outbound("How are you?")
		assert.Equal(t, []chat.Message{
			chat.SystemMessage("sys"),
			chat.UserMessage("Hello"),
			chat.AssistantMessage("Hi!"),
			chat.UserMessage("How are you?"),
		}, got)
	})

	t.Run("does not modify the transcript", func(t *testing.T) {
		t.Parallel()
		tr := chat.NewTranscript("")
		tr.Record("a", "b")
		out := tr.Outbound("c")
		out[0] = chat.UserMessage("mutated")
		_ = append(out, chat.UserMessage("extra"))
		assert.Equal(t, 2, tr.Len())
		assert.Equal(t, chat.UserMessage("a"), tr.Messages()[0])
	})
}

func TestTranscript_Record(t *testing.T) {
	t.Parallel()
	tr := chat.NewTranscript("sys")
	for _, pair := range [][2]string{{"q1", "a1"}, {"q2", "a2"}, {"q3", "a3"}} {
		tr.Record(pair[0], pair[1])
	}

	msgs := tr.Messages()
	require.Len(t, msgs, 7)
	assert.Equal(t, 3, tr.Turns())
	assert.Equal(t, chat.RoleSystem, msgs[0].Role)
	for i, m := range msgs[1:] {
		want := chat.RoleUser
		if i%2 == 1 {
			want = chat.RoleAssistant
		}
		assert.Equal(t, want, m.Role, "message %d", i+1)
	}
	assert.Equal(t, "q2", msgs[3].Content)
	assert.Equal(t, "a2", msgs[4].Content)
}

func TestTranscript_MessagesReturnsCopy(t *testing.T) {
	t.Parallel()
	tr := chat.NewTranscript("")
	tr.Record("a", "b")
	msgs := tr.Messages()
	msgs[0] = chat.UserMessage("changed")
	assert.Equal(t, "a", tr.Messages()[0].Content)
}
