package urplit

// NoticeLevel represents severity of an operator notice.
type NoticeLevel string

const (
	// NoticeInfo indicates an informational notice.
	NoticeInfo NoticeLevel = "info"
	// NoticeWarning indicates a warning notice.
	NoticeWarning NoticeLevel = "warning"
	// NoticeError indicates an error notice.
	NoticeError NoticeLevel = "error"
)

// Notice represents a message surfaced to the operator.
type Notice struct {
	Level   NoticeLevel `json:"level" yaml:"level"`                     // Severity level
	Message string      `json:"message" yaml:"message"`                 // Notice message
	Asset   string      `json:"asset,omitempty" yaml:"asset,omitempty"` // Associated asset name, for UI highlighting
}

// NoticeSink receives operator notices during conversion.
type NoticeSink interface {
	Notify(n Notice)
}

// NoticeLog is a NoticeSink that collects notices in order.
type NoticeLog struct {
	Notices []Notice
}

// Notify appends n to the log.
func (l *NoticeLog) Notify(n Notice) {
	l.Notices = append(l.Notices, n)
}

// Count returns the number of collected notices at the given level.
func (l *NoticeLog) Count(level NoticeLevel) int {
	var n int
	for _, it := range l.Notices {
		if it.Level == level {
			n++
		}
	}

	return n
}
