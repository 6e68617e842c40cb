package models

// Conversation is a two-party messaging thread. ConversationID is the pair key
// of its participants, so lookup never needs a scan. UnreadCounts is a
// denormalized per-participant counter kept in sync by the message dispatcher;
// the message log stays the source of truth.
type Conversation struct {
	ConversationID string         `dynamodbav:"conversationId" json:"conversationId"`
	Participants   []string       `dynamodbav:"participants" json:"participants"`
	Type           string         `dynamodbav:"type" json:"type"` // private, group
	LastMessage    string         `dynamodbav:"lastMessage,omitempty" json:"lastMessage,omitempty"`
	LastMessageAt  string         `dynamodbav:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"`
	UnreadCounts   map[string]int `dynamodbav:"unreadCounts" json:"unreadCounts"`
	CreatedAt      string         `dynamodbav:"createdAt" json:"createdAt"`
}

// HasParticipant reports whether the given user is part of the conversation.
func (c Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// ConversationsTable is the DynamoDB table name for conversations
const ConversationsTable = "Conversations"
