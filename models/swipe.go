package models

// SwipeAction is an immutable record of one user's like/pass toward another.
// Repeated swipes by the same actor toward the same target each append a new
// record; the log is never rewritten.
type SwipeAction struct {
	ActorID   string `dynamodbav:"actorId" json:"actorId"` // Partition Key
	SwipeID   string `dynamodbav:"swipeId" json:"swipeId"` // Sort Key
	TargetID  string `dynamodbav:"targetId" json:"targetId"`
	Action    string `dynamodbav:"action" json:"action"` // like, pass
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// SwipesTable is the DynamoDB table name for swipe actions
const SwipesTable = "Swipes"
