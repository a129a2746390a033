package repository

import (
	"os"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{name: &types.AttributeValueMemberS{Value: value}}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t.UTC()
}

// sortByCreatedAt orders raw items by created_at, then by keyAttr.
func sortByCreatedAt(items []map[string]types.AttributeValue, keyAttr string) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := stringAttr(items[i], "created_at"), stringAttr(items[j], "created_at")
		if ci != cj {
			return ci < cj
		}
		return stringAttr(items[i], keyAttr) < stringAttr(items[j], keyAttr)
	})
}
