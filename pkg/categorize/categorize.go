// Package categorize turns the flat task list the API returns into per-type,
// per-status buckets with display-ready fields, invoking the damage
// projection for every incomplete due daily.
package categorize

import (
	"time"

	"github.com/kyokomi/emoji/v2"
	"go.uber.org/zap"

	"github.com/harrisonrobin/habitick/pkg/colors"
	"github.com/harrisonrobin/habitick/pkg/damage"
	"github.com/harrisonrobin/habitick/pkg/habitica"
	"github.com/harrisonrobin/habitick/pkg/tags"
)

// Status classifies a task within its type bucket.
type Status string

const (
	StatusDue     Status = "due"
	StatusDone    Status = "done"
	StatusGrey    Status = "grey"
	StatusExpired Status = "expired"
	// StatusNone is the single slot for types where the due/done dimension
	// does not apply (habits, rewards).
	StatusNone Status = "none"
)

// Habit directions.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionBoth = "both"
	DirectionNone = "none"
)

// ProcessedTask is the UI-ready projection of one raw task. It is created
// fresh on every pass and never mutated afterwards.
type ProcessedTask struct {
	ID     string        `json:"id"`
	Type   string        `json:"type"`
	Text   string        `json:"text"`
	Notes  string        `json:"notes,omitempty"`
	Tags   []string      `json:"tags,omitempty"`
	Status Status        `json:"status"`
	Value  float64       `json:"value"`
	Bucket colors.Bucket `json:"bucket"`

	// Habits
	Direction string `json:"direction,omitempty"`

	// Dailies
	Streak            int `json:"streak,omitempty"`
	ChecklistDone     int `json:"checklist_done,omitempty"`
	ChecklistTotal    int `json:"checklist_total,omitempty"`
	damage.Projection     // damage_to_user / damage_to_party
}

// Buckets maps task type to status to the tasks in that slot, in fetch order.
type Buckets map[string]map[Status][]ProcessedTask

// Result is one completed categorization pass.
type Result struct {
	Buckets Buckets `json:"buckets"`
	// Skipped counts records dropped for an unrecognized or missing type.
	Skipped int `json:"skipped"`
}

// Categorize buckets every recognized task exactly once. Records with an
// unrecognized type are skipped and counted rather than aborting the pass.
// The user context and tag list must come from the same fetch session; both
// are treated as read-only.
func Categorize(rawTasks []habitica.Task, tagList []habitica.Tag, uc damage.Context, log *zap.Logger) *Result {
	if log == nil {
		log = zap.NewNop()
	}
	return categorize(rawTasks, tags.NewIndex(tagList), uc, time.Now(), log)
}

func categorize(rawTasks []habitica.Task, idx *tags.Index, uc damage.Context, now time.Time, log *zap.Logger) *Result {
	res := &Result{Buckets: Buckets{}}

	for i := range rawTasks {
		task := &rawTasks[i]

		switch task.Type {
		case habitica.TypeHabit, habitica.TypeDaily, habitica.TypeTodo, habitica.TypeReward:
		default:
			log.Warn("skipping task with unrecognized type",
				zap.String("id", task.ID),
				zap.String("type", task.Type))
			res.Skipped++
			continue
		}

		processed := ProcessedTask{
			ID:     task.ID,
			Type:   task.Type,
			Text:   emoji.Sprint(task.Text),
			Notes:  emoji.Sprint(task.Notes),
			Tags:   idx.Resolve(task.Tags),
			Value:  task.Value,
			Bucket: colors.ForValue(task.Value),
		}

		switch task.Type {
		case habitica.TypeHabit:
			processed.Status = StatusNone
			processed.Direction = habitDirection(task)
		case habitica.TypeDaily:
			processed.Status = dailyStatus(task)
			processed.Streak = task.Streak
			processed.ChecklistDone, processed.ChecklistTotal = task.ChecklistProgress()
			if processed.Status == StatusDue {
				processed.Projection = damage.Project(task, uc)
			}
		case habitica.TypeTodo:
			processed.Status = todoStatus(task, now)
		case habitica.TypeReward:
			// The purchase cost rides in the same value field the other
			// types use, so the bucket mapping already applies.
			processed.Status = StatusNone
		}

		byStatus, ok := res.Buckets[task.Type]
		if !ok {
			byStatus = map[Status][]ProcessedTask{}
			res.Buckets[task.Type] = byStatus
		}
		byStatus[processed.Status] = append(byStatus[processed.Status], processed)
	}

	return res
}

func habitDirection(task *habitica.Task) string {
	switch {
	case task.Up && task.Down:
		return DirectionBoth
	case task.Up:
		return DirectionUp
	case task.Down:
		return DirectionDown
	default:
		return DirectionNone
	}
}

func dailyStatus(task *habitica.Task) Status {
	if !task.IsDue {
		return StatusGrey
	}
	if task.Completed {
		return StatusDone
	}
	return StatusDue
}

// todoStatus compares due dates at whole-day resolution: a todo is expired
// only once its due date is strictly in the past.
func todoStatus(task *habitica.Task, now time.Time) Status {
	if task.Due == nil || task.Due.IsZero() {
		return StatusGrey
	}
	dueDay := truncateToDay(task.Due.Time)
	today := truncateToDay(now)
	if dueDay.Before(today) {
		return StatusExpired
	}
	return StatusDue
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
