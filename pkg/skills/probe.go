package skills

import "os"

// ProbePaths reports existence and read permission for each path, in input
// order, one status per input. Readable is false whenever the path is
// missing, and otherwise reflects an explicit open-for-read check. Results
// are computed fresh on every call.
func ProbePaths(paths []string) []PathStatus {
	statuses := make([]PathStatus, 0, len(paths))
	for _, path := range paths {
		statuses = append(statuses, probePath(path))
	}
	return statuses
}

func probePath(path string) PathStatus {
	status := PathStatus{Path: path}

	if _, err := os.Stat(path); err != nil {
		return status
	}
	status.Exists = true

	f, err := os.Open(path)
	if err != nil {
		return status
	}
	f.Close()
	status.Readable = true

	return status
}
