package habitica

import (
	"fmt"
	"strings"
	"time"
)

// Task type tags as the API reports them.
const (
	TypeHabit  = "habit"
	TypeDaily  = "daily"
	TypeTodo   = "todo"
	TypeReward = "reward"
)

// FlexTime handles the date formats the API mixes: RFC3339 with or without
// sub-second precision, bare dates, and empty strings for unset fields.
type FlexTime struct {
	time.Time
}

var flexTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// UnmarshalJSON implements the json.Unmarshaler interface for FlexTime.
func (ft *FlexTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		ft.Time = time.Time{}
		return nil
	}

	for _, layout := range flexTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			ft.Time = t
			return nil
		}
	}
	return fmt.Errorf("failed to parse time string '%s'", s)
}

// MarshalJSON implements the json.Marshaler interface for FlexTime.
func (ft FlexTime) MarshalJSON() ([]byte, error) {
	if ft.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + ft.Time.Format(time.RFC3339) + `"`), nil
}

// ChecklistItem is one sub-item on a daily or todo.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task is one record from GET /tasks/user, immutable once fetched.
// Fields not shared by all four types are simply absent for the others.
type Task struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Text     string   `json:"text"`
	Notes    string   `json:"notes,omitempty"`
	Value    float64  `json:"value"`
	Priority float64  `json:"priority"`
	Tags     []string `json:"tags,omitempty"`

	// Dailies and todos
	Completed bool            `json:"completed,omitempty"`
	Due       *FlexTime       `json:"date,omitempty"`
	Checklist []ChecklistItem `json:"checklist,omitempty"`

	// Dailies
	IsDue  bool `json:"isDue,omitempty"`
	Streak int  `json:"streak,omitempty"`

	// Habits
	Up   bool `json:"up,omitempty"`
	Down bool `json:"down,omitempty"`
}

// ChecklistProgress returns completed and total counts for the checklist.
func (t *Task) ChecklistProgress() (done, total int) {
	for _, item := range t.Checklist {
		if item.Completed {
			done++
		}
	}
	return done, len(t.Checklist)
}

// Tag is one entry from GET /tags.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the slice of GET /user this client cares about.
type User struct {
	Stats struct {
		Con   float64 `json:"con"`
		Buffs struct {
			Con     float64 `json:"con"`
			Stealth int     `json:"stealth"`
		} `json:"buffs"`
	} `json:"stats"`
	Preferences struct {
		Sleep bool `json:"sleep"`
	} `json:"preferences"`
}

// Boss describes the opponent of a combat quest.
type Boss struct {
	Name     string  `json:"name"`
	Strength float64 `json:"str"`
}

// QuestContent is the static content block of a running quest. Collection
// quests carry no boss.
type QuestContent struct {
	Boss *Boss `json:"boss"`
}

// Quest is the party's current quest state.
type Quest struct {
	Active  bool          `json:"active"`
	Key     string        `json:"key"`
	Content *QuestContent `json:"content"`
}

// Party is the slice of GET /groups/party this client cares about. The quest
// content block is only present while a quest is running.
type Party struct {
	Quest Quest `json:"quest"`
}

// BossStrength returns the strength of the active quest boss, or 0 and false
// when there is no active boss quest or the boss entry is malformed.
func (p *Party) BossStrength() (float64, bool) {
	if p == nil || !p.Quest.Active {
		return 0, false
	}
	if p.Quest.Content == nil || p.Quest.Content.Boss == nil {
		return 0, false
	}
	str := p.Quest.Content.Boss.Strength
	if str <= 0 {
		return 0, false
	}
	return str, true
}
