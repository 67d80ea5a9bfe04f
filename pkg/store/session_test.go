package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversation_History(t *testing.T) {
	c := NewConversation("u1")
	assert.Equal(t, "", c.History())

	c.Turns = append(c.Turns, Turn{Question: "q1", Answer: "a1"}, Turn{Question: "q2", Answer: "a2"})
	assert.Equal(t, "User: q1\nAI: a1\nUser: q2\nAI: a2", c.History())

	var nilConv *Conversation
	assert.Equal(t, "", nilConv.History())
}

func TestConversation_CloneIsIndependent(t *testing.T) {
	c := NewConversation("u1")
	c.Turns = append(c.Turns, Turn{Question: "q", Answer: "a"})

	cp := c.Clone()
	cp.Turns = append(cp.Turns, Turn{Question: "q2"})
	cp.Turns[0].Answer = "changed"

	assert.Len(t, c.Turns, 1)
	assert.Equal(t, "a", c.Turns[0].Answer)
}
