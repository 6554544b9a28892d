package ui

import (
	"fmt"
	"time"

	"github.com/gammazero/deque"
)

const defaultActivityLines = 4

// Activity keeps the most recent status lines shown under the board.
type Activity struct {
	lines *deque.Deque[string]
	limit int
	now   func() time.Time
}

func NewActivity(limit int) *Activity {
	if limit <= 0 {
		limit = defaultActivityLines
	}
	return &Activity{
		lines: deque.New[string](limit),
		limit: limit,
		now:   time.Now,
	}
}

func (activity *Activity) Addf(format string, args ...interface{}) {
	line := activity.now().Format("15:04:05 ") + fmt.Sprintf(format, args...)
	activity.lines.PushBack(line)
	for activity.lines.Len() > activity.limit {
		activity.lines.PopFront()
	}
}

// Lines returns the retained lines, oldest first.
func (activity *Activity) Lines() []string {
	lines := make([]string, activity.lines.Len())
	for i := range lines {
		lines[i] = activity.lines.At(i)
	}
	return lines
}
