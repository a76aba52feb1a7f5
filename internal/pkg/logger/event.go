package logger

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// LogEvent writes an invocation payload under the "event" key. The entry is
// written at info, or at the most verbose enabled level when info is filtered
// out, so every invocation leaves its payload in the log.
func (al *AppLogger) LogEvent(entry *logrus.Entry, payload []byte, msg string) {
	level := logrus.InfoLevel
	if !al.IsLevelEnabled(level) {
		level = al.GetLevel()
	}

	entry.WithField("event", al.eventValue(payload)).Log(level, msg)
}

// eventValue keeps valid JSON nested in JSON output; every other formatter
// gets the payload as text.
func (al *AppLogger) eventValue(payload []byte) interface{} {
	if _, ok := al.Formatter.(*logrus.JSONFormatter); ok && json.Valid(payload) {
		return json.RawMessage(payload)
	}
	return string(payload)
}
