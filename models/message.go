package models

type Message struct {
	ConversationID string `dynamodbav:"conversationId" json:"conversationId"` // Partition Key
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`           // Sort Key
	MessageID      string `dynamodbav:"messageId" json:"messageId"`
	SenderID       string `dynamodbav:"senderId" json:"senderId"`
	ReceiverID     string `dynamodbav:"receiverId" json:"receiverId"`
	Content        string `dynamodbav:"content" json:"content"`
}

// MessagesTable is the DynamoDB table name for messages
const MessagesTable = "Messages"
