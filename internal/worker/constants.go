package worker

import "time"

// ============================================================================
// Pool Defaults
// ============================================================================

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 256

	// JobTimeout bounds a single job's context
	JobTimeout = 10 * time.Second
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolStarted     = "Worker pool started"
	LogMsgPoolStopped     = "Worker pool stopped"
)
