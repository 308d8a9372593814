package categorize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harrisonrobin/habitick/pkg/colors"
	"github.com/harrisonrobin/habitick/pkg/damage"
	"github.com/harrisonrobin/habitick/pkg/habitica"
	"github.com/harrisonrobin/habitick/pkg/tags"
)

var testNow = time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC)

func run(t *testing.T, taskList []habitica.Task, tagList []habitica.Tag, uc damage.Context) *Result {
	t.Helper()
	return categorize(taskList, tags.NewIndex(tagList), uc, testNow, zap.NewNop())
}

func dueOn(t time.Time) *habitica.FlexTime {
	return &habitica.FlexTime{Time: t}
}

func TestTodoStatuses(t *testing.T) {
	taskList := []habitica.Task{
		{ID: "no-date", Type: habitica.TypeTodo, Text: "someday"},
		{ID: "yesterday", Type: habitica.TypeTodo, Due: dueOn(testNow.AddDate(0, 0, -1))},
		{ID: "today", Type: habitica.TypeTodo, Due: dueOn(testNow)},
		{ID: "tomorrow", Type: habitica.TypeTodo, Due: dueOn(testNow.AddDate(0, 0, 1))},
	}

	res := run(t, taskList, nil, damage.Context{})
	todos := res.Buckets[habitica.TypeTodo]

	require.Len(t, todos[StatusGrey], 1)
	assert.Equal(t, "no-date", todos[StatusGrey][0].ID)
	require.Len(t, todos[StatusExpired], 1)
	assert.Equal(t, "yesterday", todos[StatusExpired][0].ID)
	require.Len(t, todos[StatusDue], 2)
	assert.Equal(t, "today", todos[StatusDue][0].ID)
	assert.Equal(t, "tomorrow", todos[StatusDue][1].ID)
}

func TestHabitDirections(t *testing.T) {
	taskList := []habitica.Task{
		{ID: "both", Type: habitica.TypeHabit, Up: true, Down: true},
		{ID: "up", Type: habitica.TypeHabit, Up: true},
		{ID: "down", Type: habitica.TypeHabit, Down: true},
		{ID: "none", Type: habitica.TypeHabit},
	}

	res := run(t, taskList, nil, damage.Context{})
	habits := res.Buckets[habitica.TypeHabit][StatusNone]
	require.Len(t, habits, 4)

	byID := map[string]string{}
	for _, h := range habits {
		byID[h.ID] = h.Direction
	}
	assert.Equal(t, DirectionBoth, byID["both"])
	assert.Equal(t, DirectionUp, byID["up"])
	assert.Equal(t, DirectionDown, byID["down"])
	assert.Equal(t, DirectionNone, byID["none"])
}

func TestDailyStatusAndDamage(t *testing.T) {
	taskList := []habitica.Task{
		{ID: "off", Type: habitica.TypeDaily, Value: -10, Priority: 1},
		{ID: "done", Type: habitica.TypeDaily, Value: -10, Priority: 1, IsDue: true, Completed: true},
		{ID: "due", Type: habitica.TypeDaily, Value: -10, Priority: 1, IsDue: true, Streak: 3},
	}

	res := run(t, taskList, nil, damage.Context{})
	dailies := res.Buckets[habitica.TypeDaily]

	require.Len(t, dailies[StatusGrey], 1)
	require.Len(t, dailies[StatusDone], 1)
	require.Len(t, dailies[StatusDue], 1)

	assert.Zero(t, dailies[StatusDone][0].ToUser)

	due := dailies[StatusDue][0]
	assert.Equal(t, 3, due.Streak)
	assert.Equal(t, 2.58, due.ToUser)
	assert.Equal(t, 0.0, due.ToParty)
}

func TestPartyDamageOnBossQuest(t *testing.T) {
	taskList := []habitica.Task{
		{ID: "due", Type: habitica.TypeDaily, Value: -10, Priority: 1, IsDue: true},
	}
	uc := damage.Context{BossActive: true, BossStrength: 4}

	res := run(t, taskList, nil, uc)
	due := res.Buckets[habitica.TypeDaily][StatusDue][0]
	assert.Equal(t, 5.2, due.ToParty)
}

func TestTagResolutionAndText(t *testing.T) {
	taskList := []habitica.Task{
		{
			ID:   "t",
			Type: habitica.TypeTodo,
			Text: "ship it :rocket:",
			Tags: []string{"tag-1", "tag-unknown"},
		},
	}
	tagList := []habitica.Tag{{ID: "tag-1", Name: "work"}}

	res := run(t, taskList, tagList, damage.Context{})
	todo := res.Buckets[habitica.TypeTodo][StatusGrey][0]

	assert.Equal(t, []string{"work"}, todo.Tags)
	assert.Contains(t, todo.Text, "ship it")
	assert.NotContains(t, todo.Text, ":rocket:")
}

func TestValueBuckets(t *testing.T) {
	taskList := []habitica.Task{
		{ID: "reward", Type: habitica.TypeReward, Value: 20},
		{ID: "habit", Type: habitica.TypeHabit, Value: -20},
	}

	res := run(t, taskList, nil, damage.Context{})
	assert.Equal(t, colors.Best, res.Buckets[habitica.TypeReward][StatusNone][0].Bucket)
	assert.Equal(t, colors.Worst, res.Buckets[habitica.TypeHabit][StatusNone][0].Bucket)
}

func TestSkipsUnrecognizedTypes(t *testing.T) {
	taskList := []habitica.Task{
		{ID: "fine", Type: habitica.TypeHabit},
		{ID: "typeless"},
		{ID: "alien", Type: "challenge"},
	}

	res := run(t, taskList, nil, damage.Context{})
	assert.Equal(t, 2, res.Skipped)
	assert.Len(t, res.Buckets[habitica.TypeHabit][StatusNone], 1)
}

func TestCategorizeIsIdempotent(t *testing.T) {
	taskList := []habitica.Task{
		{ID: "d", Type: habitica.TypeDaily, Value: -4, Priority: 1.5, IsDue: true},
		{ID: "t", Type: habitica.TypeTodo, Due: dueOn(testNow.AddDate(0, 0, 2))},
		{ID: "h", Type: habitica.TypeHabit, Up: true},
		{ID: "r", Type: habitica.TypeReward, Value: 10},
	}
	tagList := []habitica.Tag{{ID: "x", Name: "x"}}
	uc := damage.Context{Constitution: 40, BossActive: true, BossStrength: 2.5}

	first := run(t, taskList, tagList, uc)
	second := run(t, taskList, tagList, uc)
	assert.Equal(t, first, second)
}
