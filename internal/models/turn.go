// ABOUTME: ConversationTurn represents one message in a chat exchange
// ABOUTME: Turns carry a role (system, user, assistant) and message content
package models

import (
	"fmt"
	"strings"
)

// Role identifies the author of a conversation turn
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is a single message within a conversation
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Validate checks that the turn has a known role and non-empty content
func (t ConversationTurn) Validate() error {
	switch t.Role {
	case RoleSystem, RoleUser, RoleAssistant:
	default:
		return fmt.Errorf("unknown role: %q", t.Role)
	}
	if strings.TrimSpace(t.Content) == "" {
		return fmt.Errorf("turn content cannot be empty")
	}
	return nil
}
