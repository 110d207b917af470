package domain

import "context"

// LikeReconciler repairs drift between the denormalized like counter and the
// underlying like rows. Toggles enqueue the touched artifact; the reconciler
// periodically recounts and rewrites the counter in batches.
type LikeReconciler interface {
	Start(ctx context.Context)

	// Enqueue schedules an artifact for recounting. Never blocks; a full
	// queue drops the task and the next toggle on the artifact re-enqueues it.
	Enqueue(artifactID int64)
}
