package app

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-snake/internal/sims/snake"
)

var clockBase = time.Unix(1000, 0)

func newTestSession(t *testing.T, rows, cols int) (*Session, *bytes.Buffer) {
	t.Helper()
	cfg := NewConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.MovesPerSecond = 10
	cfg.Seed = 5
	var buf bytes.Buffer
	sess, err := NewSession(*cfg, log.New(&buf, "", 0))
	require.NoError(t, err)
	return sess, &buf
}

// ticker returns a function that feeds the session clock one move interval
// per call. The first call only primes the clock.
func ticker(sess *Session) func() bool {
	step := time.Second / time.Duration(sess.clock.TPS())
	i := 0
	return func() bool {
		now := clockBase.Add(time.Duration(i) * step)
		i++
		return sess.Tick(now)
	}
}

func TestNewSessionStartsFirstRun(t *testing.T) {
	sess, logs := newTestSession(t, 5, 5)

	assert.Equal(t, 1, sess.Runs())
	assert.NotEqual(t, uuid.Nil, sess.RunID())
	assert.Equal(t, int64(5), sess.Sim().Config().Seed)
	assert.Contains(t, logs.String(), "[snake] run "+sess.RunID().String()+" started")
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Cols = 1
	_, err := NewSession(*cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTickFollowsMoveClock(t *testing.T) {
	sess, _ := newTestSession(t, 9, 9)
	head := sess.Sim().Head()

	assert.False(t, sess.Tick(clockBase), "a fresh run waits one interval")
	assert.False(t, sess.Tick(clockBase.Add(50*time.Millisecond)))
	assert.True(t, sess.Tick(clockBase.Add(100*time.Millisecond)))
	assert.Equal(t, head.Translate(snake.Right), sess.Sim().Head())
}

func TestSessionPlaysRestartsAndKeepsBest(t *testing.T) {
	sess, logs := newTestSession(t, 2, 4)
	tick := ticker(sess)
	require.False(t, tick())

	// The route covers every free cell of the 2x4 board, so food is eaten.
	require.True(t, sess.Turn(snake.Up))
	require.True(t, tick())
	require.True(t, sess.Turn(snake.Left))
	for i := 0; i < 3; i++ {
		require.True(t, tick())
	}
	require.True(t, sess.Turn(snake.Down))
	require.True(t, tick())
	require.Equal(t, snake.Position{Row: 1, Col: 0}, sess.Sim().Head())
	require.GreaterOrEqual(t, sess.Best(), 1)

	require.True(t, tick())
	require.True(t, sess.Sim().GameOver())
	assert.False(t, tick(), "finished games do not tick")
	assert.Contains(t, logs.String(), "over: score=")

	best := sess.Best()
	firstRun := sess.RunID()
	require.NoError(t, sess.Restart())

	assert.Equal(t, 2, sess.Runs())
	assert.NotEqual(t, firstRun, sess.RunID())
	assert.Equal(t, best, sess.Best())
	assert.Equal(t, int64(6), sess.Sim().Config().Seed)
	assert.False(t, sess.Sim().GameOver())
	assert.Zero(t, sess.Sim().Score())
}

func TestPauseSuspendsInputAndTicks(t *testing.T) {
	sess, _ := newTestSession(t, 9, 9)
	tick := ticker(sess)
	tick()

	sess.TogglePause()
	require.True(t, sess.Paused())
	assert.False(t, sess.Turn(snake.Up))
	assert.False(t, tick())

	sess.TogglePause()
	assert.True(t, sess.Turn(snake.Up))
}

func TestSpeedControl(t *testing.T) {
	sess, _ := newTestSession(t, 9, 9)

	require.True(t, sess.SetIntParameter(speedParam, 100))
	assert.Equal(t, maxMovesPerSecond, sess.clock.TPS())
	require.True(t, sess.SetIntParameter(speedParam, 3))
	assert.Equal(t, 3, sess.clock.TPS())
	assert.False(t, sess.SetIntParameter("rows", 3))

	params := sess.Parameters()
	speed, ok := params.Lookup(speedParam)
	require.True(t, ok)
	assert.Equal(t, "3", speed.Value)
	runs, ok := params.Lookup("runs")
	require.True(t, ok)
	assert.Equal(t, "1", runs.Value)
	_, ok = params.Lookup("score")
	assert.True(t, ok, "simulation values are included")
}
