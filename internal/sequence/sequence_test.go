package sequence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepper/internal/steps"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseYAML_Mapping(t *testing.T) {
	def, err := ParseYAML([]byte(`circular: true
initial: profile
steps:
  - account
  - name: profile
    title: Your profile
    optional: true
  - name: 3
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"account", "profile", "3"}, def.Names())
	require.NotNil(t, def.Circular)
	assert.True(t, *def.Circular)
	assert.Equal(t, "profile", def.Initial)

	assert.False(t, def.Steps[0].IsRecord())
	assert.True(t, def.Steps[1].IsRecord())

	title, ok := def.Steps[1].Attr("title")
	require.True(t, ok)
	assert.Equal(t, "Your profile", title)
	optional, _ := def.Steps[1].Attr("optional")
	assert.Equal(t, true, optional)
}

func TestParseYAML_BareList(t *testing.T) {
	def, err := ParseYAML([]byte("- a\n- b\n- 3\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "3"}, def.Names())
	assert.Nil(t, def.Circular)
	assert.Empty(t, def.Initial)
}

func TestParseYAML_Empty(t *testing.T) {
	def, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, def.Steps)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantMissing bool
	}{
		{"mapping without name", "steps:\n  - title: nope\n", true},
		{"null name", "steps:\n  - name: ~\n", true},
		{"null step", "steps:\n  - ~\n", true},
		{"nested list step", "steps:\n  - [a, b]\n", false},
		{"scalar document", "just-a-string\n", false},
		{"invalid yaml", "steps: [unclosed\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.content))
			require.Error(t, err)
			if tt.wantMissing {
				assert.ErrorIs(t, err, ErrMissingName)
			}
		})
	}
}

func TestParseCSV(t *testing.T) {
	def, err := ParseCSV(strings.NewReader(`Name, Title
account, Create account
profile, Your profile
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"account", "profile"}, def.Names())
	assert.Nil(t, def.Circular)

	title, ok := def.Steps[1].Attr("title")
	require.True(t, ok)
	assert.Equal(t, "Your profile", title)
	_, ok = def.Steps[1].Attr("name")
	assert.False(t, ok)
}

func TestParseCSV_Errors(t *testing.T) {
	t.Run("missing name column", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("title\nA\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("name,title\n,A\n"))
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("name,title\na,A,extra\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestParseCSV_Empty(t *testing.T) {
	def, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, def.Steps)
}

func TestDefinition_Controller(t *testing.T) {
	circular := true
	def := &Definition{
		Steps:    steps.Names("a", "b", "c"),
		Circular: &circular,
		Initial:  "c",
	}

	c, err := def.Controller()
	require.NoError(t, err)
	assert.True(t, c.Circular())
	assert.Equal(t, "c", c.CurrentStep())

	c, err = def.Controller(steps.WithCircular(false), steps.WithInitialStep("b"))
	require.NoError(t, err)
	assert.False(t, c.Circular(), "caller options override the file")
	assert.Equal(t, "b", c.CurrentStep())
}

func TestDefinition_Controller_Empty(t *testing.T) {
	_, err := (&Definition{}).Controller()
	assert.ErrorIs(t, err, steps.ErrEmptyStepList)
}

func TestResolvePath(t *testing.T) {
	t.Run("env overrides everything", func(t *testing.T) {
		t.Setenv(PathEnv, "/from/env.yaml")
		assert.Equal(t, "/from/env.yaml", ResolvePath(t.TempDir(), "explicit.yaml"))
	})

	t.Run("explicit path", func(t *testing.T) {
		t.Setenv(PathEnv, "")
		assert.Equal(t, "explicit.yaml", ResolvePath(t.TempDir(), "explicit.yaml"))
	})

	t.Run("discovers in priority order", func(t *testing.T) {
		t.Setenv(PathEnv, "")
		dir := t.TempDir()
		writeFile(t, dir, "steps.csv", "name\na\n")
		assert.Equal(t, filepath.Join(dir, "steps.csv"), ResolvePath(dir, ""))

		writeFile(t, dir, "steps.yaml", "- a\n")
		assert.Equal(t, filepath.Join(dir, "steps.yaml"), ResolvePath(dir, ""))
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv(PathEnv, "")
		assert.Empty(t, ResolvePath(t.TempDir(), ""))
	})
}

func TestReader_Read(t *testing.T) {
	dir := t.TempDir()

	yamlPath := writeFile(t, dir, "wizard.yml", "steps: [a, b]\n")
	def, err := NewReader(yamlPath).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, def.Names())

	csvPath := writeFile(t, dir, "wizard.CSV", "name\nx\ny\n")
	def, err = NewReader(csvPath).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, def.Names())
}

func TestReader_Read_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewReader(filepath.Join(dir, "missing.yaml")).Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sequence")

	txt := writeFile(t, dir, "steps.txt", "a\n")
	_, err = NewReader(txt).Read()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := writeFile(t, dir, "bad.yaml", "steps:\n  - title: x\n")
	_, err = NewReader(bad).Read()
	assert.ErrorIs(t, err, ErrMissingName)
	assert.Contains(t, err.Error(), bad)
}
