package models

import "strings"

// Match represents mutual interest between two users. MatchID is the
// deterministic pair key, so at most one match can ever exist per pair.
type Match struct {
	MatchID     string `dynamodbav:"matchId" json:"matchId"`
	UserID1     string `dynamodbav:"userId1" json:"userId1"` // lexicographically smaller id
	UserID2     string `dynamodbav:"userId2" json:"userId2"`
	MatchedAt   string `dynamodbav:"matchedAt" json:"matchedAt"`
	HasMessaged bool   `dynamodbav:"hasMessaged" json:"hasMessaged"`
	IsActive    bool   `dynamodbav:"isActive" json:"isActive"`
}

// Involves reports whether the given user is one of the match participants.
func (m Match) Involves(userID string) bool {
	return m.UserID1 == userID || m.UserID2 == userID
}

// OtherUser returns the participant opposite to the given user, or "" if the
// user is not part of the match.
func (m Match) OtherUser(userID string) string {
	switch userID {
	case m.UserID1:
		return m.UserID2
	case m.UserID2:
		return m.UserID1
	}
	return ""
}

// PairKey derives the deterministic id for an unordered user pair by sorting
// the two ids. Matches and conversations share this key, which is what makes
// their create-if-absent writes idempotent.
func PairKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "#" + b
}

// SortPair returns the two ids in lexicographic order.
func SortPair(a, b string) (string, string) {
	if strings.Compare(a, b) > 0 {
		return b, a
	}
	return a, b
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"
