package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("line 3 'x' bad", From("line %d '%v' %v", 3, "x", "bad"))

	buf := &bytes.Buffer{}
	assert.NoError(Fprintln(buf, "%v: %v", "a.rasm", "050005"))
	assert.Equal("a.rasm: 050005\n", buf.String())
}

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("de-DE"))
	assert.Error(SetLanguage("not a language tag"))
	assert.NoError(SetLanguage("en-US"))
}
