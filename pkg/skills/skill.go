// Package skills implements discovery of agent skills from the filesystem.
// A skill is a directory containing a SKILL.md instruction file; the scanner
// walks configured search roots, stops descending at each skill boundary, and
// records every recoverable failure as a structured warning instead of
// returning an error.
package skills

// SkillInfo describes one discovered skill. Records are produced fresh by
// every scan and are not re-validated until the next scan.
type SkillInfo struct {
	Name        string `json:"name"`        // base name of the skill directory
	Description string `json:"description"` // from the description: line, or a fallback
	Path        string `json:"path"`        // directory containing SKILL.md
	Source      string `json:"source"`      // search root the skill was found under
}

// ScanWarning records one recoverable failure encountered during a scan.
type ScanWarning struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// ScanResult holds the skills and warnings produced by a single scan
// invocation. Skill names are not deduplicated across search roots.
type ScanResult struct {
	Skills   []SkillInfo   `json:"skills"`
	Warnings []ScanWarning `json:"warnings"`
}

// PathStatus reports existence and read permission for one probed path.
type PathStatus struct {
	Path     string `json:"path"`
	Exists   bool   `json:"exists"`
	Readable bool   `json:"readable"`
}
