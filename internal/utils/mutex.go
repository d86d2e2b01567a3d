package utils

import "sync"

var mu sync.Mutex

// ExecuteWithMutex serializes fn with every other caller in the process.
func ExecuteWithMutex(fn func()) {
	mu.Lock()
	defer mu.Unlock()
	fn()
}
