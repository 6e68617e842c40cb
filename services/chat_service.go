package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"featur_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ErrInvalidMessage is returned when a message is missing its conversation,
// participants, or content. Nothing is written in that case.
var ErrInvalidMessage = errors.New("invalid message")

// ChatService appends messages and maintains the denormalized conversation
// metadata (last-message preview, unread counters). The message log is the
// source of truth; the metadata update is best-effort and never unwinds a
// stored message.
type ChatService struct {
	Dynamo  DynamoAPI
	Matches *MatchService
}

// SendMessage persists a new immutable message, then updates the parent
// conversation's preview fields and increments the receiver's unread counter.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, senderID, receiverID, content string) (*models.Message, error) {
	if conversationID == "" || senderID == "" || receiverID == "" || content == "" {
		log.Printf("⚠️ Rejecting malformed message (conversation=%q, sender=%q, receiver=%q)", conversationID, senderID, receiverID)
		return nil, ErrInvalidMessage
	}

	message := models.Message{
		ConversationID: conversationID,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339Nano),
		MessageID:      uuid.NewString(),
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
	}

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	log.Printf("📩 Message stored in conversation %s (%s -> %s)", conversationID, senderID, receiverID)

	// Secondary writes below are best-effort. The preview and counters are
	// derived views that can be recomputed from the message log.
	s.updateConversationMetadata(ctx, message)
	if s.Matches != nil {
		s.Matches.MarkMessaged(ctx, conversationID)
	}

	return &message, nil
}

// updateConversationMetadata refreshes lastMessage/lastMessageAt and bumps the
// receiver's unread counter in a single atomic update expression.
func (s *ChatService) updateConversationMetadata(ctx context.Context, message models.Message) {
	key := map[string]types.AttributeValue{
		"conversationId": &types.AttributeValueMemberS{Value: message.ConversationID},
	}
	updateExpression := "SET lastMessage = :content, lastMessageAt = :at, unreadCounts.#receiver = if_not_exists(unreadCounts.#receiver, :zero) + :one"
	expressionValues := map[string]types.AttributeValue{
		":content": &types.AttributeValueMemberS{Value: message.Content},
		":at":      &types.AttributeValueMemberS{Value: message.CreatedAt},
		":zero":    &types.AttributeValueMemberN{Value: "0"},
		":one":     &types.AttributeValueMemberN{Value: "1"},
	}
	expressionNames := map[string]string{
		"#receiver": message.ReceiverID,
	}

	_, err := s.Dynamo.UpdateItemWithCondition(ctx, models.ConversationsTable, updateExpression, "attribute_exists(conversationId)", key, expressionValues, expressionNames)
	if err != nil {
		log.Printf("⚠️ Failed to update conversation metadata for %s: %v", message.ConversationID, err)
	}
}

// GetRecentMessages fetches the most recent messages for a conversation in
// reverse-chronological order (newest first), up to limit.
func (s *ChatService) GetRecentMessages(ctx context.Context, conversationID string, limit int) ([]models.Message, error) {
	if conversationID == "" {
		return nil, errors.New("conversationId cannot be empty")
	}
	if limit <= 0 {
		limit = 50
	}

	keyCondition := "conversationId = :conversationId"
	expressionValues := map[string]types.AttributeValue{
		":conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, nil, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	return messages, nil
}

// GetMessageSnapshot returns the full ordered message list for a conversation,
// oldest first. Live subscribers receive this whole snapshot on every change
// and replace their view with it.
func (s *ChatService) GetMessageSnapshot(ctx context.Context, conversationID string) ([]models.Message, error) {
	messages, err := s.GetRecentMessages(ctx, conversationID, 500)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// MarkConversationRead zeroes the given participant's unread counter.
func (s *ChatService) MarkConversationRead(ctx context.Context, conversationID, userID string) error {
	if conversationID == "" || userID == "" {
		return errors.New("conversationId and userId cannot be empty")
	}

	key := map[string]types.AttributeValue{
		"conversationId": &types.AttributeValueMemberS{Value: conversationID},
	}
	updateExpression := "SET unreadCounts.#user = :zero"
	expressionValues := map[string]types.AttributeValue{
		":zero": &types.AttributeValueMemberN{Value: "0"},
	}
	expressionNames := map[string]string{
		"#user": userID,
	}

	_, err := s.Dynamo.UpdateItemWithCondition(ctx, models.ConversationsTable, updateExpression, "attribute_exists(conversationId)", key, expressionValues, expressionNames)
	if errors.Is(err, ErrConditionFailed) {
		return fmt.Errorf("conversation %s not found", conversationID)
	}
	if err != nil {
		return fmt.Errorf("failed to mark conversation %s as read: %w", conversationID, err)
	}

	log.Printf("✅ Conversation %s marked read for %s", conversationID, userID)
	return nil
}
