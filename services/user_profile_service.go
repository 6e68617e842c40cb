package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"featur_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrInvalidProfile is returned when a profile fails validation before any
// store call is made.
var ErrInvalidProfile = errors.New("invalid profile")

type UserProfileService struct {
	Dynamo DynamoAPI
}

// AddUserProfile validates and stores a new user profile.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UserID == "" || profile.DisplayName == "" {
		return nil, ErrInvalidProfile
	}
	for _, style := range profile.ContentStyles {
		if !models.IsValidContentStyle(style) {
			return nil, fmt.Errorf("%w: unknown content style %q", ErrInvalidProfile, style)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, ErrInvalidProfile
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if errors.Is(err, ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", userID, err)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", userID, err)
	}

	return &profile, nil
}

// UpdateUserProfile applies string-field updates to an existing profile and
// stamps updatedAt.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]string) (*models.UserProfile, error) {
	if userID == "" || len(updates) == 0 {
		return nil, ErrInvalidProfile
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		placeholder := ":" + k
		attributeName := "#" + k
		updateExpression += " " + attributeName + " = " + placeholder + ","

		expressionAttributeValues[placeholder] = &types.AttributeValueMemberS{Value: v}
		expressionAttributeNames[attributeName] = k
	}

	updateExpression += " #updatedAt = :updatedAt"
	expressionAttributeValues[":updatedAt"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)}
	expressionAttributeNames["#updatedAt"] = "updatedAt"

	updatedItem, err := ups.Dynamo.UpdateItemWithCondition(ctx, models.UserProfilesTable, updateExpression, "attribute_exists(userId)", key, expressionAttributeValues, expressionAttributeNames)
	if errors.Is(err, ErrConditionFailed) {
		return nil, fmt.Errorf("profile %s not found", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", userID, err)
	}

	var updatedProfile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to parse updated profile: %w", err)
	}

	return &updatedProfile, nil
}

// DeleteUserProfile removes a user profile from DynamoDB
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidProfile
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, key)
}
