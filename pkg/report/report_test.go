package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrisonrobin/habitick/pkg/categorize"
	"github.com/harrisonrobin/habitick/pkg/damage"
	"github.com/harrisonrobin/habitick/pkg/habitica"
)

func TestRender(t *testing.T) {
	result := &categorize.Result{
		Buckets: categorize.Buckets{
			habitica.TypeDaily: {
				categorize.StatusDue: []categorize.ProcessedTask{
					{
						ID: "d1", Type: habitica.TypeDaily, Text: "Brush teeth",
						Status: categorize.StatusDue, Streak: 4,
						ChecklistDone: 1, ChecklistTotal: 2,
						Projection: damage.Projection{ToUser: 2.58, ToParty: 5.2},
					},
				},
			},
			habitica.TypeHabit: {
				categorize.StatusNone: []categorize.ProcessedTask{
					{ID: "h1", Type: habitica.TypeHabit, Text: "Stretch",
						Status: categorize.StatusNone, Direction: categorize.DirectionUp,
						Tags: []string{"health"}},
				},
			},
		},
		Skipped: 2,
	}

	out := Render(result)

	assert.Contains(t, out, "Habits")
	assert.Contains(t, out, "Dailies")
	assert.Contains(t, out, "Brush teeth")
	assert.Contains(t, out, "-2.58 HP")
	assert.Contains(t, out, "-5.2 party")
	assert.Contains(t, out, "streak 4")
	assert.Contains(t, out, "(1/2)")
	assert.Contains(t, out, "#health")
	assert.Contains(t, out, "2 record(s) skipped")

	// Empty sections stay out of the report.
	assert.False(t, strings.Contains(out, "Rewards"))
	assert.False(t, strings.Contains(out, "To Do"))
}
