package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanStripsScript(t *testing.T) {
	assert.Equal(t, "Hi", Clean("<script>x</script>Hi"))
}

func TestCleanStripsMarkup(t *testing.T) {
	assert.Equal(t, "Buy milk", Clean("<b>Buy</b> milk"))
	assert.Equal(t, "click", Clean(`<a href="http://evil.example">click</a>`))
}

func TestCleanPlainTextUntouched(t *testing.T) {
	assert.Equal(t, "Buy milk", Clean("Buy milk"))
}

func TestCleanTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "Hi", Clean("  <p> Hi </p>  "))
}

func TestCleanPtr(t *testing.T) {
	assert.Nil(t, CleanPtr(nil))

	dirty := "<script>alert(1)</script>desc"
	cleaned := CleanPtr(&dirty)
	assert.Equal(t, "desc", *cleaned)
	// input is not mutated
	assert.Equal(t, "<script>alert(1)</script>desc", dirty)
}
