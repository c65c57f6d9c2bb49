package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultForTagBlockByDefault(t *testing.T) {
	d := DefaultForTag("DIV")
	assert.Equal(t, "block", d["display"].Value.Str)
}

func TestDefaultForTagInlineTags(t *testing.T) {
	d := DefaultForTag("SPAN")
	assert.Equal(t, "inline", d["display"].Value.Str)
}

func TestDefaultForTagNoneTags(t *testing.T) {
	d := DefaultForTag("SCRIPT")
	assert.Equal(t, "none", d["display"].Value.Str)
}
