package utils

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ExtractString safely extracts a string from a DynamoDB attribute map
func ExtractString(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

// ExtractBool safely extracts a boolean from a DynamoDB attribute map
func ExtractBool(item map[string]types.AttributeValue, field string) bool {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberBOOL); ok {
			return v.Value
		}
	}
	return false
}

// ExtractStringList safely extracts a list of strings from a DynamoDB attribute map
func ExtractStringList(item map[string]types.AttributeValue, field string) []string {
	attr, ok := item[field]
	if !ok {
		return nil
	}
	list, ok := attr.(*types.AttributeValueMemberL)
	if !ok {
		return nil
	}

	values := make([]string, 0, len(list.Value))
	for _, entry := range list.Value {
		if v, ok := entry.(*types.AttributeValueMemberS); ok {
			values = append(values, v.Value)
		}
	}
	return values
}

// IntersectionSize counts the distinct values present in both slices.
func IntersectionSize(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}

	count := 0
	counted := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, dup := counted[v]; dup {
			continue
		}
		if _, ok := seen[v]; ok {
			count++
			counted[v] = struct{}{}
		}
	}
	return count
}
