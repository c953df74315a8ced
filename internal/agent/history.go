package agent

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"
	"time"
)

type historyEntry struct {
	Timestamp int64  `json:"timestamp"`
	Project   string `json:"project"`
}

var historyCache struct {
	sync.Mutex
	path    string
	modTime time.Time
	data    map[string]time.Time
}

// LastActiveByProject reads a claude history.jsonl file and returns
// a map of project path -> last activity time.
// Results are cached and only re-read when the path or the file's mtime changes.
func LastActiveByProject(path string) map[string]time.Time {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	historyCache.Lock()
	defer historyCache.Unlock()

	if historyCache.data != nil && historyCache.path == path && info.ModTime().Equal(historyCache.modTime) {
		return historyCache.data
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	result := make(map[string]time.Time)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256*1024), 1024*1024)
	for scanner.Scan() {
		var entry historyEntry
		if json.Unmarshal(scanner.Bytes(), &entry) != nil {
			continue
		}
		if entry.Project == "" || entry.Timestamp == 0 {
			continue
		}
		t := time.UnixMilli(entry.Timestamp)
		if existing, ok := result[entry.Project]; !ok || t.After(existing) {
			result[entry.Project] = t
		}
	}

	historyCache.path = path
	historyCache.modTime = info.ModTime()
	historyCache.data = result
	return result
}
