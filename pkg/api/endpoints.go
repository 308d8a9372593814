package api

import (
	"context"
	"encoding/json"

	"github.com/harrisonrobin/habitick/pkg/habitica"
)

// Tasks fetches the user's full task list. Records that fail to decode are
// skipped; the count of skipped records is returned alongside the tasks.
func (c *Client) Tasks(ctx context.Context) ([]habitica.Task, int, error) {
	raw, err := c.Get(ctx, "tasks/user", nil)
	if err != nil {
		return nil, 0, err
	}
	tasks, skipped, err := habitica.ParseTasks(raw)
	if err != nil {
		return nil, 0, &Error{Kind: KindMalformed, Message: err.Error(), Raw: raw}
	}
	return tasks, skipped, nil
}

// Tags fetches the user's tag list.
func (c *Client) Tags(ctx context.Context) ([]habitica.Tag, error) {
	raw, err := c.Get(ctx, "tags", nil)
	if err != nil {
		return nil, err
	}
	tags, err := habitica.ParseTags(raw)
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Message: err.Error(), Raw: raw}
	}
	return tags, nil
}

// User fetches the authenticated user's profile.
func (c *Client) User(ctx context.Context) (*habitica.User, error) {
	raw, err := c.Get(ctx, "user", nil)
	if err != nil {
		return nil, err
	}
	var user habitica.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, &Error{Kind: KindMalformed, Message: err.Error(), Raw: raw}
	}
	return &user, nil
}

// Party fetches the user's party, including any running quest.
func (c *Client) Party(ctx context.Context) (*habitica.Party, error) {
	raw, err := c.Get(ctx, "groups/party", nil)
	if err != nil {
		return nil, err
	}
	var party habitica.Party
	if err := json.Unmarshal(raw, &party); err != nil {
		return nil, &Error{Kind: KindMalformed, Message: err.Error(), Raw: raw}
	}
	return &party, nil
}
