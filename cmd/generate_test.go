package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubgen/internal/generator"
)

const loginFeature = `Feature: Login

  Scenario: Successful login
    Given the user is on the login page
    When the user enters valid credentials
    Then the user should be redirected to the dashboard

  Scenario: Failed login
    Given the user is on the login page
    When the user enters invalid credentials
    Then an error message should be displayed
`

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func runGenerate(t *testing.T, inputDir, outputDir string, opts generator.Options) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	err := RunGenerate(context.Background(), out, errOut, inputDir, outputDir, opts)
	return out.String(), errOut.String(), err
}

func TestRunGenerate(t *testing.T) {
	t.Run("shared steps collapse to one stub across scenarios", func(t *testing.T) {
		inputDir, outputDir := t.TempDir(), filepath.Join(t.TempDir(), "bindings")
		writeDoc(t, inputDir, "login.feature", loginFeature)

		out, errOut, err := runGenerate(t, inputDir, outputDir, generator.Options{PackageName: "bindings"})
		require.NoError(t, err)
		assert.Empty(t, errOut)
		assert.Contains(t, out, "generated 1, skipped 0, failed 0")

		data, err := os.ReadFile(filepath.Join(outputDir, "login_steps.go"))
		require.NoError(t, err)
		code := string(data)

		// One Given, two When, two Then: five stubs, not six.
		assert.Equal(t, 5, strings.Count(code, "panic(\"pending step:"))
		assert.Equal(t, 1, strings.Count(code, "TheUserIsOnTheLoginPage() error"))
		assert.Contains(t, code, "TheUserEntersValidCredentials() error")
		assert.Contains(t, code, "TheUserEntersInvalidCredentials() error")
		assert.Contains(t, code, "TheUserShouldBeRedirectedToTheDashboard() error")
		assert.Contains(t, code, "AnErrorMessageShouldBeDisplayed() error")
	})

	t.Run("running twice yields byte-identical output", func(t *testing.T) {
		inputDir, outputDir := t.TempDir(), filepath.Join(t.TempDir(), "bindings")
		writeDoc(t, inputDir, "login.feature", loginFeature)

		_, _, err := runGenerate(t, inputDir, outputDir, generator.Options{})
		require.NoError(t, err)
		first, err := os.ReadFile(filepath.Join(outputDir, "login_steps.go"))
		require.NoError(t, err)

		_, _, err = runGenerate(t, inputDir, outputDir, generator.Options{})
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(outputDir, "login_steps.go"))
		require.NoError(t, err)

		require.Equal(t, string(first), string(second))
	})

	t.Run("package name is detected from the output directory", func(t *testing.T) {
		inputDir := t.TempDir()
		outputDir := filepath.Join(t.TempDir(), "loginsteps")
		writeDoc(t, inputDir, "login.feature", loginFeature)

		_, _, err := runGenerate(t, inputDir, outputDir, generator.Options{})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(outputDir, "login_steps.go"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "package loginsteps")
	})

	t.Run("an unreadable document fails alone", func(t *testing.T) {
		inputDir, outputDir := t.TempDir(), filepath.Join(t.TempDir(), "bindings")
		writeDoc(t, inputDir, "a.feature", loginFeature)
		// A dangling symlink matches the extension but cannot be read.
		require.NoError(t, os.Symlink(filepath.Join(inputDir, "gone"), filepath.Join(inputDir, "b.feature")))
		writeDoc(t, inputDir, "c.feature", loginFeature)

		out, errOut, err := runGenerate(t, inputDir, outputDir, generator.Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 3 documents failed")
		assert.Contains(t, errOut, "b.feature")
		assert.Contains(t, out, "generated 2, skipped 0, failed 1")

		_, err = os.Stat(filepath.Join(outputDir, "a_steps.go"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(outputDir, "c_steps.go"))
		require.NoError(t, err)
	})

	t.Run("same-named documents in sibling directories each keep an output file", func(t *testing.T) {
		inputDir, outputDir := t.TempDir(), filepath.Join(t.TempDir(), "bindings")
		require.NoError(t, os.Mkdir(filepath.Join(inputDir, "a"), 0o755))
		require.NoError(t, os.Mkdir(filepath.Join(inputDir, "b"), 0o755))
		writeDoc(t, filepath.Join(inputDir, "a"), "login.feature", "Feature: A\n  Scenario: A\n    Given a step from document a\n")
		writeDoc(t, filepath.Join(inputDir, "b"), "login.feature", "Feature: B\n  Scenario: B\n    Given a step from document b\n")

		out, _, err := runGenerate(t, inputDir, outputDir, generator.Options{PackageName: "bindings"})
		require.NoError(t, err)
		assert.Contains(t, out, "generated 2, skipped 0, failed 0")

		first, err := os.ReadFile(filepath.Join(outputDir, "login_steps.go"))
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(outputDir, "login_steps2.go"))
		require.NoError(t, err)

		assert.Contains(t, string(first), "AStepFromDocumentA")
		assert.Contains(t, string(first), "type LoginSteps struct{}")
		assert.Contains(t, string(second), "AStepFromDocumentB")
		assert.Contains(t, string(second), "type LoginSteps2 struct{}")
	})

	t.Run("tag expression narrows the generated stubs", func(t *testing.T) {
		inputDir, outputDir := t.TempDir(), filepath.Join(t.TempDir(), "bindings")
		writeDoc(t, inputDir, "tagged.feature", `Feature: Tagged

  @smoke
  Scenario: Kept
    Given a kept step

  @slow
  Scenario: Dropped
    Given a dropped step
`)

		_, _, err := runGenerate(t, inputDir, outputDir, generator.Options{Tags: "@smoke"})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(outputDir, "tagged_steps.go"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "AKeptStep")
		assert.NotContains(t, string(data), "ADroppedStep")
	})

	t.Run("documents without steps are skipped", func(t *testing.T) {
		inputDir, outputDir := t.TempDir(), filepath.Join(t.TempDir(), "bindings")
		writeDoc(t, inputDir, "empty.feature", "Feature: Empty\n\n  Only prose.\n")

		out, _, err := runGenerate(t, inputDir, outputDir, generator.Options{})
		require.NoError(t, err)
		assert.Contains(t, out, "generated 0, skipped 1, failed 0")

		_, err = os.Stat(filepath.Join(outputDir, "empty_steps.go"))
		require.True(t, os.IsNotExist(err))
	})
}
