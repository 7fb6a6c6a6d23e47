package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bastionctf/bastion/challenge"
	"github.com/bastionctf/bastion/internal/util"
)

func TestFmtValueTruncatesLongValues(t *testing.T) {
	assert.Equal(t, `"short"`, fmtValue("short"))

	long := strings.Repeat("a", 200)
	got := fmtValue(long)
	assert.Less(t, len(got), 80)
	assert.Contains(t, got, "…")
}

func TestFmtOptString(t *testing.T) {
	assert.Equal(t, "<unset>", fmtOptString(nil))
	assert.Equal(t, `"exit 0"`, fmtOptString(util.Ptr("exit 0")))
}

func TestFmtOptInt(t *testing.T) {
	assert.Equal(t, "<unset>", fmtOptInt(nil))
	assert.Equal(t, "500", fmtOptInt(util.Ptr(int64(500))))
}

func TestFmtFiles(t *testing.T) {
	assert.Equal(t, "[]", fmtFiles(nil))
	assert.Equal(t, "[a.zip, b.so]", fmtFiles([]challenge.Attachment{
		{Name: "a.zip", URL: "https://cdn.example/1"},
		{Name: "b.so", URL: "https://cdn.example/2"},
	}))
}
