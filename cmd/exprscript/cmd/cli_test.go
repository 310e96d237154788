package cmd

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// execute runs the root command with args and returns whatever it wrote to
// its output writer, mirroring go-dws's internal/interp/fixture_test.go
// pattern of capturing command output before handing it to go-snaps.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute(%v): %v", args, err)
	}
	return buf.String()
}

func TestEvalOutputSnapshot(t *testing.T) {
	out := execute(t, "eval", `Concat("Hello, ", "world")`)
	snaps.MatchSnapshot(t, "eval_concat", out)
}

func TestParseOutputSnapshot(t *testing.T) {
	out := execute(t, "parse", `Sum(1, 2, Abs(-3))`)
	snaps.MatchSnapshot(t, "parse_sum", out)
}

func TestParseDateFormatOutputSnapshot(t *testing.T) {
	out := execute(t, "parse", "--date-format", "yyyy-MM-dd HH:mm:ss.fff")
	snaps.MatchSnapshot(t, "parse_date_format", out)
}

func TestListFunctionsIncludesKnownNames(t *testing.T) {
	out := execute(t, "list-functions")
	for _, want := range []string{"Concat", "AreEquals", "DateAddMonths"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("list-functions output missing %q", want)
		}
	}
}
