// Package utils provides the loose type conversions used when decoding API
// payloads and query parameters.
//
// The RetroAchievements API is not consistent about JSON types: ids may be
// numbers or numeric strings and names may be null. ToInt, ToString and
// ToBool accept any of those shapes and fall back to the zero value.
package utils
