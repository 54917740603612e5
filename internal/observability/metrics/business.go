package metrics

import "time"

// RecordGenerationAttempt records the result of an article generation run.
// Status should be either "success" or "error".
func RecordGenerationAttempt(status string) {
	GenerationAttemptsTotal.WithLabelValues(status).Inc()
}

// RecordGenerationDuration records the end-to-end time of a generation run.
// Only successful runs are observed; failures abort before completion.
func RecordGenerationDuration(duration time.Duration) {
	GenerationDuration.Observe(duration.Seconds())
}

// RecordPostCreated records a created post. Origin should be "manual" for
// posts written by hand and "generated" for AI-generated ones.
func RecordPostCreated(origin string) {
	PostsCreatedTotal.WithLabelValues(origin).Inc()
}

// RecordCommentCreated records a created comment.
func RecordCommentCreated() {
	CommentsCreatedTotal.Inc()
}

// RecordUserRegistered records a successful user registration.
func RecordUserRegistered() {
	UsersRegisteredTotal.Inc()
}
