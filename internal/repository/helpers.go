package repository

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/DarylAssKicker/ROXGuildManager-sub001/internal/model"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// isThrown checks whether an error carries a THROW message emitted by one
// of our transactional precondition checks.
func isThrown(err error, msg string) bool {
	return err != nil && strings.Contains(err.Error(), msg)
}

// extractRecordID extracts a record ID string from a SurrealDB result value
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// recordIDNumber extracts the numeric part of a record ID such as
// member:7. Returns 0 when the value is not numeric.
func recordIDNumber(id interface{}) int64 {
	switch v := id.(type) {
	case models.RecordID:
		return toInt64(v.ID)
	case *models.RecordID:
		if v != nil {
			return toInt64(v.ID)
		}
	case map[string]interface{}:
		return toInt64(v["id"])
	default:
		return toInt64(id)
	}
	return 0
}

// toInt64 converts the numeric types SurrealDB hands back into an int64
func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint64:
		return int64(n)
	case uint32:
		return int64(n)
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	}
	return 0
}

// extractQueryResults extracts the result array from a SurrealDB response
func extractQueryResults(results []interface{}) []interface{} {
	out := make([]interface{}, 0)
	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				out = append(out, resultData...)
			}
		}
	}
	return out
}

// nilIfEmpty converts an empty string to nil so optional fields store
// as NONE rather than ""
func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getTime extracts a time value from a map
func getTime(m map[string]interface{}, key string) time.Time {
	switch t := m[key].(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// getStringSlice extracts a string slice from a map, resolving record IDs
func getStringSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	result := make([]string, 0, len(v))
	for _, item := range v {
		if s := extractRecordID(item); s != "" {
			result = append(result, s)
		}
	}
	return result
}

// getSlotArray extracts a party's fixed slot array from a map. Short or
// missing arrays come back as all-empty rather than panicking; the
// integrity auditor reports those separately.
func getSlotArray(m map[string]interface{}, key string) [model.PartySize]int64 {
	var slots [model.PartySize]int64
	v, ok := m[key].([]interface{})
	if !ok {
		return slots
	}
	for i := 0; i < len(v) && i < model.PartySize; i++ {
		slots[i] = toInt64(v[i])
	}
	return slots
}

// slotSlice converts a fixed slot array to the []int64 SurrealDB binds.
func slotSlice(slots [model.PartySize]int64) []int64 {
	out := make([]int64, model.PartySize)
	copy(out, slots[:])
	return out
}
