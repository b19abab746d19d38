package repl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fman/pkg/fman"
)

type scenario struct {
	Name  string            `yaml:"name"`
	Files map[string]string `yaml:"files"`
	Dirs  []string          `yaml:"dirs"`
	Steps []scenarioStep    `yaml:"steps"`
	After scenarioAfter     `yaml:"after"`
}

type scenarioStep struct {
	In       string   `yaml:"in"`
	Out      *string  `yaml:"out"`
	Contains []string `yaml:"contains"`
	Excludes []string `yaml:"excludes"`
	Err      string   `yaml:"err"`
	Dir      string   `yaml:"dir"`
}

type scenarioAfter struct {
	Exists  []string          `yaml:"exists"`
	Missing []string          `yaml:"missing"`
	Content map[string]string `yaml:"content"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			h := newHarness(t, "")
			for _, d := range sc.Dirs {
				h.fs.AddDir(d)
			}
			for name, content := range sc.Files {
				h.fs.AddFile(name, content)
			}

			dir := home
			for i, step := range sc.Steps {
				stdout, stderr, outcome := h.exec(step.In)
				require.Equal(t, Continue, outcome, "step %d %q", i, step.In)

				if step.Dir != "" {
					dir = step.Dir
				}
				assert.Equal(t, dir, h.repl.Session().Dir(), "step %d %q", i, step.In)

				footer := strings.Replace(fman.MsgCurrentDir, "%s", dir, 1) + "\n"
				require.True(t, strings.HasSuffix(stdout, footer), "step %d %q: stdout %q lacks footer %q", i, step.In, stdout, footer)
				body := strings.TrimSuffix(strings.TrimSuffix(stdout, footer), "\n")

				if step.Out != nil {
					assert.Equal(t, *step.Out, body, "step %d %q", i, step.In)
				}
				for _, s := range step.Contains {
					assert.Contains(t, body, s, "step %d %q", i, step.In)
				}
				for _, s := range step.Excludes {
					assert.NotContains(t, body, s, "step %d %q", i, step.In)
				}

				if step.Err == "" {
					assert.Empty(t, stderr, "step %d %q", i, step.In)
				} else {
					assert.Equal(t, step.Err+"\n", stderr, "step %d %q", i, step.In)
				}
			}

			for _, p := range sc.After.Exists {
				assert.True(t, h.fs.Exists(p), "%s should exist", p)
			}
			for _, p := range sc.After.Missing {
				assert.False(t, h.fs.Exists(p), "%s should not exist", p)
			}
			for p, want := range sc.After.Content {
				got, ok := h.fs.Content(p)
				assert.True(t, ok, "%s should be a file", p)
				assert.Equal(t, want, got, "content of %s", p)
			}
		})
	}
}
