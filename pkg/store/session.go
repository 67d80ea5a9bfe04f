package store

import (
	"strings"
	"time"
)

// Turn is one answered exchange.
type Turn struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	At       time.Time `json:"at"`
}

// Conversation is the ordered history kept for one user.
type Conversation struct {
	UserID    string    `json:"user_id"`
	Turns     []Turn    `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
}

const DefaultUserID = "default_user"

func NewConversation(userID string) *Conversation {
	return &Conversation{UserID: userID, Turns: []Turn{}, CreatedAt: time.Now()}
}

// History renders the conversation as alternating "User: " / "AI: " lines.
func (c *Conversation) History() string {
	if c == nil || len(c.Turns) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, t := range c.Turns {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("User: ")
		sb.WriteString(t.Question)
		sb.WriteString("\nAI: ")
		sb.WriteString(t.Answer)
	}
	return sb.String()
}

func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Turns = append([]Turn(nil), c.Turns...)
	return &cp
}
