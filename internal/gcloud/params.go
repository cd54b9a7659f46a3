// Package gcloud handles the shape of generated gcloud commands: placeholder
// extraction, flag parsing, and the parameter-info JSON the model returns.
package gcloud

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\[([A-Z_]+)\]`)

// ParamInfo describes one bracket placeholder as reported by the model.
type ParamInfo struct {
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Required    bool     `json:"required"`
	Default     string   `json:"default"`
}

// Placeholders returns the bracket placeholder names in a command, in order
// of first appearance, without duplicates.
func Placeholders(command string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(command, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Fill replaces every occurrence of [name] with the supplied value, for each
// entry in values. Placeholders without a value are left in place.
func Fill(command string, values map[string]string) string {
	for name, value := range values {
		if value == "" {
			continue
		}
		command = strings.ReplaceAll(command, "["+name+"]", value)
	}
	return command
}

// ParseParamInfo extracts the placeholder descriptions from a model response.
// The JSON may be wrapped in ```json fences, bare fences, or none at all.
func ParseParamInfo(response string) (map[string]ParamInfo, error) {
	raw := response
	if i := strings.Index(raw, "```json"); i >= 0 {
		raw = raw[i+len("```json"):]
		if j := strings.Index(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	} else if i := strings.Index(raw, "```"); i >= 0 {
		raw = raw[i+len("```"):]
		if j := strings.Index(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.TrimSpace(raw)

	var info map[string]ParamInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("failed to parse parameter info: %w", err)
	}
	return info, nil
}
