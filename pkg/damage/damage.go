// Package damage projects the harm an incomplete due daily will inflict on
// the user and, during a boss quest, on the party. The formula mirrors the
// service's cron math so the numbers shown match what midnight will charge.
package damage

import (
	"math"

	"github.com/harrisonrobin/habitick/pkg/habitica"
)

// Task values outside this range stop changing the damage curve.
const (
	minTaskValue = -47.27
	maxTaskValue = 21.27
)

// Context is the snapshot of user and party state a projection needs. It is
// built once per categorization pass and read-only afterwards; stealth is
// deliberately not decremented as dailies are projected, so every daily in a
// pass sees the same starting count.
type Context struct {
	Constitution float64
	Stealth      int
	Sleeping     bool
	BossActive   bool
	BossStrength float64
}

// Projection is the damage pair attached to a processed daily.
type Projection struct {
	ToUser  float64 `json:"damage_to_user"`
	ToParty float64 `json:"damage_to_party"`
}

// Project computes the damage a daily will cause if it stays incomplete.
// Dailies that are not due, already done, or shielded (sleeping, stealth)
// cause none.
func Project(task *habitica.Task, uc Context) Projection {
	if !task.IsDue || task.Completed || uc.Sleeping || uc.Stealth > 0 {
		return Projection{}
	}

	value := math.Min(math.Max(task.Value, minTaskValue), maxTaskValue)
	delta := math.Abs(math.Pow(0.9747, value))

	// Checked-off sub-items mitigate proportionally; a fully checked daily
	// causes nothing even though it is due.
	if done, total := task.ChecklistProgress(); total > 0 {
		delta *= 1 - float64(done)/float64(total)
	}

	prio := priorityMultiplier(task.Priority)
	conBonus := math.Max(0.1, 1-uc.Constitution/250)
	toUser := round(conBonus*prio*delta*2, 2)

	var toParty float64
	if uc.BossActive && uc.BossStrength > 0 {
		bossDelta := delta
		// Trivial tasks hurt the party less, but high priority does not
		// amplify boss damage beyond the base curve.
		if prio < 1 {
			bossDelta *= prio
		}
		toParty = round(bossDelta*uc.BossStrength, 1)
	}

	return Projection{ToUser: toUser, ToParty: toParty}
}

// priorityMultiplier maps the service's declared difficulty weights. Anything
// unrecognized falls back to medium.
func priorityMultiplier(p float64) float64 {
	switch p {
	case 0.1, 1.0, 1.5, 2.0:
		return p
	default:
		return 1.0
	}
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
