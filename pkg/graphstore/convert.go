package graphstore

import "github.com/neo4j/neo4j-go-driver/v5/neo4j"

// The Bolt wire format returns integers as int64 and floats as float64, but
// absent optional properties come back as nil; these helpers default
// missing/mismatched values to the zero value rather than panicking.

func asInt64(v any) int64 {
	if i, ok := v.(int64); ok {
		return i
	}
	return 0
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asInt64Slice(v any) []int64 {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(list))
	for _, item := range list {
		out = append(out, asInt64(item))
	}
	return out
}

func countFrom(result *neo4j.EagerResult) int64 {
	if len(result.Records) == 0 {
		return 0
	}
	v, _ := result.Records[0].Get("c")
	return asInt64(v)
}

func idsFrom(result *neo4j.EagerResult, key string) []int64 {
	ids := make([]int64, 0, len(result.Records))
	for _, record := range result.Records {
		v, _ := record.Get(key)
		ids = append(ids, asInt64(v))
	}
	return ids
}
