package tags

import (
	"testing"

	"github.com/harrisonrobin/habitick/pkg/habitica"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	idx := NewIndex([]habitica.Tag{
		{ID: "t1", Name: "work"},
		{ID: "t2", Name: "health"},
		{ID: "t3", Name: ""},
	})

	assert.Equal(t, "work", idx.Get("t1"))
	assert.Empty(t, idx.Get("missing"))

	// Unknown and unnamed IDs are dropped silently.
	names := idx.Resolve([]string{"t2", "missing", "t3", "t1"})
	assert.Equal(t, []string{"health", "work"}, names)

	assert.Nil(t, idx.Resolve(nil))
}
