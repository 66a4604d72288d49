package logger

import (
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/interview"
)

const (
	FieldJobTarget    = "job_target"
	FieldTimezone     = "timezone"
	FieldAvailability = "availability"
	FieldCandidateID  = "candidate_id"
	FieldSessionID    = "session_id"
	FieldRequest      = "request"
)

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced with a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// PreferenceFields describes preferences for structured logs. Empty values are omitted.
func PreferenceFields(prefs interview.Preferences) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if prefs.JobTarget != "" {
		fields = append(fields, zap.String(FieldJobTarget, prefs.JobTarget))
	}
	if prefs.Timezone != "" {
		fields = append(fields, zap.String(FieldTimezone, prefs.Timezone))
	}
	if len(prefs.Availability) > 0 {
		fields = append(fields, zap.Strings(FieldAvailability, prefs.Availability))
	}
	return fields
}
