package sound

import (
	"bytes"
	"log/slog"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New(Config{Player: PlayerNone}, nil)
	require.NoError(t, err)
	assert.IsType(t, Nop{}, p)

	p, err = New(Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Logger{}, p)

	p, err = New(Config{Player: PlayerCommand, Command: []string{"aplay", "-q"}}, nil)
	require.NoError(t, err)
	cmd, ok := p.(*Command)
	require.True(t, ok)
	assert.Equal(t, "aplay", cmd.Program)
	assert.Equal(t, []string{"-q"}, cmd.Args)

	_, err = New(Config{Player: PlayerCommand}, nil)
	assert.ErrorIs(t, err, ErrNoCommand)

	_, err = New(Config{Player: "speaker"}, nil)
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestLoggerPlay(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Dir: "/opt/zoo", Log: slog.New(slog.NewTextHandler(&buf, nil))}

	require.NoError(t, l.Play("sound/lion.wav"))
	assert.Contains(t, buf.String(), "path="+filepath.Join("/opt/zoo", "sound/lion.wav"))
}

func TestCommandPlay(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	require.NoError(t, (&Command{Program: "true"}).Play("sound/snake.wav"))

	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	assert.Error(t, (&Command{Program: "false"}).Play("sound/snake.wav"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "sound/popugai.wav", resolve("", "sound/popugai.wav"))
	assert.Equal(t, filepath.Join("assets", "sound/popugai.wav"), resolve("assets", "sound/popugai.wav"))
	assert.Equal(t, "/abs/clip.wav", resolve("assets", "/abs/clip.wav"))
}
