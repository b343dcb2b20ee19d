package skills

import "strings"

// DefaultDescription is returned when a SKILL.md carries no description: line.
const DefaultDescription = "No description provided."

const descriptionKey = "description:"

// ExtractDescription scans content line by line and returns the value of the
// first "description: <value>" line, trimmed. The key match is case-sensitive.
// Content without such a line, including empty content, yields
// DefaultDescription. The function never fails and performs no I/O.
func ExtractDescription(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, descriptionKey) {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(trimmed, descriptionKey))
		if value != "" {
			return value
		}
	}
	return DefaultDescription
}
