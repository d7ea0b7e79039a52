package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func runRatioWithArgs(t *testing.T, method string, args []string) (string, error) {
	t.Helper()
	old := ratioMethod
	ratioMethod = method
	defer func() { ratioMethod = old }()

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := runRatio(cmd, args)
	return buf.String(), err
}

func TestRunRatioSingleMethod(t *testing.T) {
	output, err := runRatioWithArgs(t, "wcag21", []string{"#000000", "#ffffff"})
	if err != nil {
		t.Fatalf("runRatio failed: %v", err)
	}
	if strings.TrimSpace(output) != "21.00" {
		t.Errorf("Expected 21.00, got %q", output)
	}
}

func TestRunRatioKeywords(t *testing.T) {
	output, err := runRatioWithArgs(t, "wcag21", []string{"black", "white"})
	if err != nil {
		t.Fatalf("runRatio failed: %v", err)
	}
	if strings.TrimSpace(output) != "21.00" {
		t.Errorf("Expected 21.00, got %q", output)
	}
}

func TestRunRatioAllMethods(t *testing.T) {
	output, err := runRatioWithArgs(t, "all", []string{"#333333", "#fafafa"})
	if err != nil {
		t.Fatalf("runRatio failed: %v", err)
	}

	for _, want := range []string{"METHOD", "CONTRAST", "wcag21", "lstar", "apca", "delta-phi"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output should contain %q, got:\n%s", want, output)
		}
	}
}

func TestRunRatioInvalidColour(t *testing.T) {
	_, err := runRatioWithArgs(t, "wcag21", []string{"notacolour", "#ffffff"})
	if err == nil {
		t.Error("Expected error for invalid foreground colour")
	}

	_, err = runRatioWithArgs(t, "wcag21", []string{"#ffffff", "notacolour"})
	if err == nil {
		t.Error("Expected error for invalid background colour")
	}
}

func TestRunRatioUnknownMethod(t *testing.T) {
	_, err := runRatioWithArgs(t, "euclid", []string{"#000000", "#ffffff"})
	if err == nil {
		t.Error("Expected error for unknown method")
	}
}
