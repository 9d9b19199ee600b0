package support

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cucumber/godog"
)

var bitPatternRe = regexp.MustCompile(`^[01]+$`)

// aValuesFileContaining writes a values file into the temp directory.
func (testCtx *TestContext) aValuesFileContaining(doc *godog.DocString) error {
	path := filepath.Join(testCtx.TempDir, "values.txt")
	content := doc.Content
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write values file: %w", err)
	}
	testCtx.ValuesFile = path
	return nil
}

// aConfigFileContaining writes a config file into the temp directory.
func (testCtx *TestContext) aConfigFileContaining(doc *godog.DocString) error {
	path := filepath.Join(testCtx.TempDir, "bargo.yaml")
	content := doc.Content
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	testCtx.ConfigFile = path
	return nil
}

// theOutputShouldBeABitPattern verifies the output is a string of ones and zeros.
func (testCtx *TestContext) theOutputShouldBeABitPattern() error {
	output := strings.TrimSpace(testCtx.LastOutput)
	if output == "" {
		return errors.New("output is empty, expected a bit pattern")
	}
	if !bitPatternRe.MatchString(output) {
		return fmt.Errorf("output is not a bit pattern: %s", output)
	}
	return nil
}

// RegisterEncodeSteps registers step definitions for encode scenarios.
func (testCtx *TestContext) RegisterEncodeSteps(sc *godog.ScenarioContext) {
	sc.Step(`^a values file containing:$`, testCtx.aValuesFileContaining)
	sc.Step(`^a config file containing:$`, testCtx.aConfigFileContaining)
	sc.Step(`^the output should be a bit pattern$`, testCtx.theOutputShouldBeABitPattern)
}
