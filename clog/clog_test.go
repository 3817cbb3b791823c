package clog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	lines []string
	level int
}

func (r *recorder) Infof(format string, args ...interface{}) {
	r.lines = append(r.lines, "I "+fmt.Sprintf(format, args...))
}
func (r *recorder) Warningf(format string, args ...interface{}) {
	r.lines = append(r.lines, "W "+fmt.Sprintf(format, args...))
}
func (r *recorder) Errorf(format string, args ...interface{}) {
	r.lines = append(r.lines, "E "+fmt.Sprintf(format, args...))
}
func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.lines = append(r.lines, "F "+fmt.Sprintf(format, args...))
}
func (r *recorder) V(level int) bool { return r.level >= level }

func TestSetLogger(t *testing.T) {
	prev := current()
	defer SetLogger(prev)

	rec := &recorder{level: 1}
	SetLogger(rec)
	Infof("loaded %d shapes", 2)
	Warningf("unknown type: %s", "varchar")
	Errorf("boom")
	require.Equal(t, []string{"I loaded 2 shapes", "W unknown type: varchar", "E boom"}, rec.lines)

	require.True(t, V(1))
	require.False(t, V(2))

	SetLogger(nil)
	Infof("dropped")
	require.Len(t, rec.lines, 3)
}

func TestVerbosityWithoutLeveledBackend(t *testing.T) {
	prev := current()
	defer SetLogger(prev)
	defer SetV(0)

	SetLogger(stdlog{l: nil})
	SetV(2)
	require.True(t, V(2))
	require.False(t, V(3))
}
