package submission

// Notice texts shown to the user.
const (
	NoticeAnalyzing     = "Analyzing your data..."
	NoticeComplete      = "Analysis complete!"
	NoticeInvalid       = "Please fix the errors in the form"
	noticeFailedPattern = "Prediction failed: %s"
)

// Level classifies a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a transient user-facing message.
type Notice struct {
	Level   Level
	Message string
}

// Notifier displays notices. Implementations decide how (toast, stderr line,
// status bar).
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (fn NotifierFunc) Notify(n Notice) {
	if fn != nil {
		fn(n)
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notice) {}
