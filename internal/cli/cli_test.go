package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// testEnv is an isolated config and data directory pair.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

// cmdResult holds the outcome of one CLI invocation.
type cmdResult struct {
	stdout string
	stderr string
	code   int
}

const quietConfig = "log_level: warn\nsound:\n  player: none\n"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	e := &testEnv{
		t:         t,
		configDir: filepath.Join(dir, "config"),
		dataDir:   filepath.Join(dir, "data"),
	}
	e.writeConfig(quietConfig)
	return e
}

func (e *testEnv) writeConfig(content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(e.t, os.WriteFile(filepath.Join(e.configDir, configFileExt), []byte(content), 0o644))
}

// run invokes the CLI with --config-dir and --data-dir set.
func (e *testEnv) run(args ...string) cmdResult {
	e.t.Helper()
	all := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	var stdout, stderr bytes.Buffer
	code := Run(all, &stdout, &stderr)
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	res := e.run(args...)
	require.Equal(e.t, exitSuccess, res.code, "zoo %v: %s", args, res.stderr)
	return res.stdout
}

func (e *testEnv) writeDocument(content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(e.dataDir, 0o755))
	require.NoError(e.t, os.WriteFile(filepath.Join(e.dataDir, "zoo.json"), []byte(content), 0o644))
}

func TestVersion(t *testing.T) {
	out := newTestEnv(t).mustRun("version")
	assert.Equal(t, "zoo v"+Version+"\nmodule: "+modulePath+"\n", out)
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	e := &testEnv{
		t:         t,
		configDir: filepath.Join(dir, "config"),
		dataDir:   filepath.Join(dir, "data"),
	}

	out := e.mustRun("init")
	assert.Contains(t, out, "Zoo initialized")

	raw, err := os.ReadFile(filepath.Join(e.configDir, configFileExt))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(raw, &cfg))
	assert.Equal(t, e.dataDir, cfg.DataDir)
	assert.Equal(t, "zoo.json", cfg.DataFile)
	assert.Equal(t, "log", cfg.Sound.Player)

	doc, err := os.ReadFile(filepath.Join(e.dataDir, "zoo.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"animals\": [],\n    \"staff\": []\n}\n", string(doc))

	// A second init keeps the existing config.
	e.writeConfig(quietConfig)
	e.mustRun("init")
	raw, err = os.ReadFile(filepath.Join(e.configDir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, quietConfig, string(raw))
}

func TestAnimalAddAndList(t *testing.T) {
	e := newTestEnv(t)

	assert.Equal(t, "Added Bird Попугай\n", e.mustRun("animal", "add", "Bird", "Попугай", "2", "30"))
	e.mustRun("animal", "add", "Mammal", "Лев", "5", "Golden")
	e.mustRun("animal", "add", "Reptile", "Змея", "3", "Scaly")

	assert.Equal(t,
		"Bird\tПопугай\t2\twing_span=30\n"+
			"Mammal\tЛев\t5\tfur_color=Golden\n"+
			"Reptile\tЗмея\t3\tscale_type=Scaly\n",
		e.mustRun("animal", "list"))

	assert.Equal(t, "Mammal\tЛев\t5\tfur_color=Golden\n", e.mustRun("animal", "list", "--kind", "Mammal"))

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(e.mustRun("--json", "animal", "list", "--kind", "Bird")), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Bird", records[0]["type"])
	assert.Equal(t, 30.0, records[0]["wing_span"])
	assert.Contains(t, records[0], "fur_color")
	assert.Nil(t, records[0]["fur_color"])
}

func TestAnimalAddRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown kind", []string{"animal", "add", "Unicorn", "Искорка", "1", "pink"}},
		{"lowercase kind", []string{"animal", "add", "bird", "Попугай", "2", "30"}},
		{"age not a number", []string{"animal", "add", "Bird", "Попугай", "two", "30"}},
		{"negative age", []string{"animal", "add", "--", "Bird", "Попугай", "-1", "30"}},
		{"wing span not a number", []string{"animal", "add", "Bird", "Попугай", "2", "wide"}},
		{"wing span NaN", []string{"animal", "add", "Bird", "Попугай", "2", "NaN"}},
		{"wing span infinite", []string{"animal", "add", "Bird", "Попугай", "2", "Inf"}},
		{"empty name", []string{"animal", "add", "Mammal", "", "5", "Golden"}},
		{"missing argument", []string{"animal", "add", "Mammal", "Лев", "5"}},
		{"unknown list kind", []string{"animal", "list", "--kind", "Fish"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			res := e.run(tt.args...)
			assert.Equal(t, exitUserError, res.code, res.stderr)
			assert.NotEmpty(t, res.stderr)
		})
	}
}

func TestNonFiniteWingSpanLeavesDocumentUntouched(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("init")

	res := e.run("animal", "add", "Bird", "Попугай", "2", "+Inf")
	assert.Equal(t, exitUserError, res.code)
	assert.Contains(t, res.stderr, "invalid variant attribute")
	assert.Empty(t, e.mustRun("animal", "list"))
}

func TestStaffAddAndList(t *testing.T) {
	e := newTestEnv(t)

	assert.Equal(t, "Added ZooKeeper Иван Змеевский\n", e.mustRun("staff", "add", "ZooKeeper", "Иван Змеевский", "30"))
	e.mustRun("staff", "add", "Veterinarian", "Доктор Айболит", "45")

	assert.Equal(t,
		"ZooKeeper\tИван Змеевский\t30\nVeterinarian\tДоктор Айболит\t45\n",
		e.mustRun("staff", "list"))
	assert.Equal(t, "Veterinarian\tДоктор Айболит\t45\n", e.mustRun("staff", "list", "--kind", "Veterinarian"))

	res := e.run("staff", "add", "Janitor", "Пётр", "40")
	assert.Equal(t, exitUserError, res.code)
}

func TestFeedAndHeal(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("animal", "add", "Mammal", "Лев", "5", "Golden")
	e.mustRun("animal", "add", "Bird", "Кеша", "1", "20")
	e.mustRun("staff", "add", "ZooKeeper", "Иван Змеевский", "30")
	e.mustRun("staff", "add", "Veterinarian", "Доктор Айболит", "45")

	assert.Equal(t, "Иван Змеевский кормит льва\n", e.mustRun("feed", "Иван Змеевский", "Лев"))
	assert.Equal(t, "Доктор Айболит лечит Кеша\n", e.mustRun("heal", "Доктор Айболит", "Кеша"))

	var result dutyResult
	require.NoError(t, json.Unmarshal([]byte(e.mustRun("--json", "heal", "Доктор Айболит", "Лев")), &result))
	assert.Equal(t, dutyResult{Staff: "Доктор Айболит", Animal: "Лев", Message: "Доктор Айболит лечит льва"}, result)

	tests := []struct {
		name string
		args []string
	}{
		{"keeper cannot heal", []string{"heal", "Иван Змеевский", "Лев"}},
		{"veterinarian cannot feed", []string{"feed", "Доктор Айболит", "Лев"}},
		{"unknown staff", []string{"feed", "Сергей Коровин", "Лев"}},
		{"unknown animal", []string{"feed", "Иван Змеевский", "Змея"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.run(tt.args...)
			assert.Equal(t, exitUserError, res.code, res.stderr)
		})
	}
}

func TestSounds(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("animal", "add", "Bird", "Попугай", "2", "30")
	e.mustRun("animal", "add", "Reptile", "Змея", "3", "Scaly")

	assert.Equal(t, "Попугай орёт 'Попка-дурак'\nЗмея шипит: Ш-ш-ш-ш-ш-ш\n", e.mustRun("sounds"))
}

func TestSoundsLogsClipsWithLogPlayer(t *testing.T) {
	e := newTestEnv(t)
	e.writeConfig("log_level: info\nsound:\n  player: log\n  dir: /srv/zoo\n")
	e.mustRun("animal", "add", "Mammal", "Лев", "5", "Golden")

	res := e.run("sounds")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stderr, "play sound")
	assert.Contains(t, res.stderr, filepath.Join("/srv/zoo", "sound", "lion.wav"))
}

func TestUnknownSoundPlayerIsUserError(t *testing.T) {
	e := newTestEnv(t)
	e.writeConfig("sound:\n  player: gramophone\n")
	assert.Equal(t, exitUserError, e.run("sounds").code)
}

func TestDemo(t *testing.T) {
	e := newTestEnv(t)
	out := e.mustRun("demo")

	assert.Contains(t, out, "Звуки животных после загрузки из файла:")
	assert.Contains(t, out, "Доктор Айболит, возраст: 45")
	assert.Contains(t, out, "Сергей Коровин кормит змею")
	assert.FileExists(t, filepath.Join(e.dataDir, demoFileName))
	assert.NoFileExists(t, filepath.Join(e.dataDir, "zoo.json"))

	file := filepath.Join(t.TempDir(), "custom.json")
	e.mustRun("demo", "--file", file)
	assert.FileExists(t, file)
}

func TestMalformedDocumentIsSystemError(t *testing.T) {
	e := newTestEnv(t)
	e.writeDocument(`{"animals": [`)

	res := e.run("animal", "list")
	assert.Equal(t, exitSysError, res.code)
	assert.Contains(t, res.stderr, "malformed zoo document")
}

func TestUnknownRecordIsSkippedWithWarning(t *testing.T) {
	e := newTestEnv(t)
	e.writeDocument(`{
    "animals": [
        {"type": "Unicorn", "name": "Искорка", "age": 1, "wing_span": null, "fur_color": null, "scale_type": null},
        {"type": "Mammal", "name": "Лев", "age": 5, "wing_span": null, "fur_color": "Golden", "scale_type": null}
    ],
    "staff": []
}`)

	res := e.run("animal", "list")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "Mammal\tЛев\t5\tfur_color=Golden\n", res.stdout)
	assert.Contains(t, res.stderr, "skipping record with unknown type")
	assert.Contains(t, res.stderr, "Unicorn")
}

func TestDataLocationFromConfig(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "elsewhere")
	configDir := filepath.Join(dir, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt),
		[]byte("data_dir: "+dataDir+"\ndata_file: park.json\nlog_level: warn\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--config-dir", configDir, "staff", "add", "ZooKeeper", "Иван Змеевский", "30"}, &stdout, &stderr)
	require.Equal(t, exitSuccess, code, stderr.String())
	assert.FileExists(t, filepath.Join(dataDir, "park.json"))
}

func TestInvalidDataFileIsUserError(t *testing.T) {
	e := newTestEnv(t)
	e.writeConfig("data_file: ../escape.json\n")
	assert.Equal(t, exitUserError, e.run("animal", "list").code)
}

func TestLogFileReceivesRecords(t *testing.T) {
	e := newTestEnv(t)
	logFile := filepath.Join(t.TempDir(), "logs", "zoo.jsonl")
	e.writeConfig("log_level: info\nlog_file: " + logFile + "\nsound:\n  player: log\n")
	e.mustRun("animal", "add", "Reptile", "Змея", "3", "Scaly")
	e.mustRun("sounds")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"play sound"`)
	assert.Contains(t, string(data), "snake.wav")
}

func TestInvalidLogLevel(t *testing.T) {
	e := newTestEnv(t)
	assert.Equal(t, exitUserError, e.run("--log-level", "loud", "version").code)
}

func TestUnknownCommand(t *testing.T) {
	e := newTestEnv(t)
	res := e.run("escape")
	assert.Equal(t, exitUserError, res.code)
	assert.Contains(t, res.stderr, "unknown command")
}
