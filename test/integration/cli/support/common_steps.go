package support

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// iRunCommand executes a command and captures its output.
func (testCtx *TestContext) iRunCommand(command string) error {
	testCtx.LastCommand = command
	testCtx.LastStartTime = time.Now()

	// Substitute placeholders with paths from the test context
	command = testCtx.substituteCommandVariables(command)

	// Parse command into parts
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return errors.New("empty command")
	}

	// Create command with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.Dir = testCtx.WorkingDir
	cmd.Env = append(os.Environ(), testCtx.EnvVars...)

	// Capture output
	output, err := cmd.CombinedOutput()
	testCtx.LastOutput = string(output)
	testCtx.LastError = err
	testCtx.LastDuration = time.Since(testCtx.LastStartTime)

	// Get exit code
	if err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			testCtx.LastExitCode = exitError.ExitCode()
		} else {
			testCtx.LastExitCode = -1
		}
	} else {
		testCtx.LastExitCode = 0
	}

	return nil
}

// substituteCommandVariables replaces placeholders in commands with actual paths.
func (testCtx *TestContext) substituteCommandVariables(command string) string {
	command = strings.ReplaceAll(command, "{temp_dir}", testCtx.TempDir)
	if testCtx.ValuesFile != "" {
		command = strings.ReplaceAll(command, "{values_file}", testCtx.ValuesFile)
	}
	if testCtx.ConfigFile != "" {
		command = strings.ReplaceAll(command, "{config_file}", testCtx.ConfigFile)
	}
	return command
}

// theCommandShouldSucceed verifies the last command succeeded.
func (testCtx *TestContext) theCommandShouldSucceed() error {
	if testCtx.LastExitCode != 0 {
		return fmt.Errorf("command failed with exit code %d: %s\nOutput: %s",
			testCtx.LastExitCode, testCtx.LastCommand, testCtx.LastOutput)
	}
	return nil
}

// theCommandShouldFail verifies the last command failed.
func (testCtx *TestContext) theCommandShouldFail() error {
	if testCtx.LastExitCode == 0 {
		return fmt.Errorf("expected command to fail but it succeeded: %s\nOutput: %s",
			testCtx.LastCommand, testCtx.LastOutput)
	}
	return nil
}

// theOutputShouldContain verifies the output contains expected text.
func (testCtx *TestContext) theOutputShouldContain(expected string) error {
	expected = testCtx.substituteCommandVariables(expected)
	if !strings.Contains(testCtx.LastOutput, expected) {
		return fmt.Errorf("output does not contain %q\nActual output: %s", expected, testCtx.LastOutput)
	}
	return nil
}

// theOutputShouldBeValidJSON verifies the output is valid JSON.
func (testCtx *TestContext) theOutputShouldBeValidJSON() error {
	output := strings.TrimSpace(testCtx.LastOutput)

	// Find JSON content, skipping any log lines before it
	jsonStart := strings.IndexAny(output, "{[")
	if jsonStart == -1 {
		return fmt.Errorf("no JSON content found in output: %s", output)
	}
	jsonContent := output[jsonStart:]

	var result interface{}
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return fmt.Errorf("output is not valid JSON: %w\nOutput: %s", err, jsonContent)
	}
	return nil
}

// theJSONShouldContain verifies the JSON output contains a specific field.
func (testCtx *TestContext) theJSONShouldContain(field string) error {
	output := strings.TrimSpace(testCtx.LastOutput)

	jsonStart := strings.IndexAny(output, "{[")
	if jsonStart == -1 {
		return fmt.Errorf("no JSON content found in output: %s", output)
	}
	jsonContent := output[jsonStart:]

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return fmt.Errorf("failed to parse JSON output: %w", err)
	}

	if err := checkFieldExists(result, field); err != nil {
		return fmt.Errorf("JSON does not contain field %q: %w\nJSON: %s", field, err, jsonContent)
	}
	return nil
}

// checkFieldExists checks if a dotted field path exists in parsed JSON.
func checkFieldExists(data map[string]interface{}, fieldPath string) error {
	parts := strings.Split(fieldPath, ".")
	current := data

	for i, part := range parts {
		value, exists := current[part]
		if !exists {
			return fmt.Errorf("field %q not found", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return nil
		}

		next, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("field %q is not an object", strings.Join(parts[:i+1], "."))
		}
		current = next
	}

	return nil
}

// theErrorShouldMention verifies error output mentions expected text.
func (testCtx *TestContext) theErrorShouldMention(expected string) error {
	combined := testCtx.LastOutput
	if testCtx.LastError != nil {
		combined += "\n" + testCtx.LastError.Error()
	}
	if !strings.Contains(strings.ToLower(combined), strings.ToLower(expected)) {
		return fmt.Errorf("error output does not mention %q\nActual output: %s", expected, combined)
	}
	return nil
}

// theFileShouldExist verifies a file exists.
func (testCtx *TestContext) theFileShouldExist(filename string) error {
	filename = testCtx.substituteCommandVariables(filename)
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(testCtx.WorkingDir, filename)
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return fmt.Errorf("file %s does not exist", filename)
	}
	testCtx.TrackFile(filename)
	return nil
}

// theEnvironmentVariableIsSetTo sets an environment variable for subsequent commands.
func (testCtx *TestContext) theEnvironmentVariableIsSetTo(name, value string) error {
	value = testCtx.substituteCommandVariables(value)
	testCtx.AddEnvVar(name, value)
	return nil
}

// RegisterCommonSteps registers all common step definitions.
func (testCtx *TestContext) RegisterCommonSteps(sc *godog.ScenarioContext) {
	testCtx.registerCommandSteps(sc)
	testCtx.registerOutputSteps(sc)
	testCtx.registerErrorSteps(sc)
	testCtx.registerFileSteps(sc)
	testCtx.registerConfigurationSteps(sc)
}

// registerCommandSteps registers command execution and result verification steps.
func (testCtx *TestContext) registerCommandSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I run "([^"]*)"$`, testCtx.iRunCommand)
	sc.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	sc.Step(`^the command should fail$`, testCtx.theCommandShouldFail)
}

// registerOutputSteps registers output content verification steps.
func (testCtx *TestContext) registerOutputSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
	sc.Step(`^the output should be valid JSON$`, testCtx.theOutputShouldBeValidJSON)
	sc.Step(`^the JSON should contain "([^"]*)"$`, testCtx.theJSONShouldContain)
}

// registerErrorSteps registers error message verification steps.
func (testCtx *TestContext) registerErrorSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the error should mention "([^"]*)"$`, testCtx.theErrorShouldMention)
}

// registerFileSteps registers filesystem verification steps.
func (testCtx *TestContext) registerFileSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the file "([^"]*)" should exist$`, testCtx.theFileShouldExist)
}

// registerConfigurationSteps registers environment and config setup steps.
func (testCtx *TestContext) registerConfigurationSteps(sc *godog.ScenarioContext) {
	sc.Step(`^the environment variable "([^"]*)" is set to "([^"]*)"$`, testCtx.theEnvironmentVariableIsSetTo)
}
