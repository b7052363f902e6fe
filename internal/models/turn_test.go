// ABOUTME: Tests for ConversationTurn validation
// ABOUTME: Verifies role checking and empty-content rejection
package models

import "testing"

func TestConversationTurn_Validate(t *testing.T) {
	tests := []struct {
		name    string
		turn    ConversationTurn
		wantErr bool
	}{
		{
			name:    "valid user turn",
			turn:    ConversationTurn{Role: RoleUser, Content: "Tell me about your pets"},
			wantErr: false,
		},
		{
			name:    "valid assistant turn",
			turn:    ConversationTurn{Role: RoleAssistant, Content: "I have two cats."},
			wantErr: false,
		},
		{
			name:    "valid system turn",
			turn:    ConversationTurn{Role: RoleSystem, Content: "You are a portfolio assistant."},
			wantErr: false,
		},
		{
			name:    "unknown role",
			turn:    ConversationTurn{Role: "moderator", Content: "hi"},
			wantErr: true,
		},
		{
			name:    "empty content",
			turn:    ConversationTurn{Role: RoleUser, Content: ""},
			wantErr: true,
		},
		{
			name:    "whitespace-only content",
			turn:    ConversationTurn{Role: RoleUser, Content: "  \t\n "},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.turn.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
