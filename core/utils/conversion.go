package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts loosely typed JSON values to int. Numbers may arrive as
// float64, json.Number or numeric strings; anything unparsable yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		return parseInt(string(v))
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return parseInt(fmt.Sprintf("%v", v))
	}
}

func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}

// ToString converts loosely typed JSON values to string. nil becomes "".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts query and JSON values to bool. Numbers are true when
// non-zero; strings accept "1", "true", "yes" and "on" in any case.
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return parseBool(v)
	case []byte:
		return parseBool(string(v))
	case nil:
		return false
	default:
		return ToInt(v) != 0
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
