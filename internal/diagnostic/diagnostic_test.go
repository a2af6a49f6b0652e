package diagnostic

import (
	"strings"
	"testing"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "full position",
			diag: Diagnostic{Severity: SeverityWarning, Code: CodeUnsupportedSyntax, File: "a.d.ts", Line: 3, Column: 7, Message: "unsupported"},
			want: "a.d.ts:3:7 - warning: [D1001] unsupported",
		},
		{
			name: "no column",
			diag: Diagnostic{Severity: SeverityError, Code: CodeParseFailure, File: "a.d.ts", Line: 3, Message: "bad"},
			want: "a.d.ts:3 - error: [D4001] bad",
		},
		{
			name: "no file",
			diag: Diagnostic{Severity: SeverityError, Code: CodeConfigInvalid, Message: "bad config"},
			want: "error: [D6001] bad config",
		},
		{
			name: "no code",
			diag: Diagnostic{Severity: SeverityWarning, File: "a.d.ts", Line: 1, Column: 1, Message: "hm"},
			want: "a.d.ts:1:1 - warning: hm",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectorCounts(t *testing.T) {
	c := NewCollector(false)
	c.Warnf(CodeUnsupportedSyntax, "a.d.ts", 1, 1, "warn %d", 1)
	c.Warn(CodeDepthExceeded, "a.d.ts", 2, 1, "warn 2")
	c.Errorf(CodeMergeConflict, "a.d.ts", 3, 1, "err %d", 1)

	if got := c.WarningCount(); got != 2 {
		t.Errorf("WarningCount() = %d, want 2", got)
	}
	if got := c.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount() = %d, want 1", got)
	}
	if !c.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if got := c.Summary(); got != "1 error(s), 2 warning(s)" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestCollectorQuietSuppressesWarnings(t *testing.T) {
	c := NewCollector(true)
	c.Warn(CodeUnsupportedSyntax, "a.d.ts", 1, 1, "warn")
	c.Error(CodeParseFailure, "a.d.ts", 2, 1, "err")

	if got := c.WarningCount(); got != 0 {
		t.Errorf("WarningCount() = %d, want 0 in quiet mode", got)
	}
	if got := c.ErrorCount(); got != 1 {
		t.Errorf("ErrorCount() = %d, want 1 (errors are never suppressed)", got)
	}
}

func TestCollectorEmpty(t *testing.T) {
	c := NewCollector(false)
	if c.HasErrors() {
		t.Error("HasErrors() on empty collector")
	}
	if got := c.Summary(); got != "no issues" {
		t.Errorf("Summary() = %q, want %q", got, "no issues")
	}
	if got := c.FormatAll(); got != "" {
		t.Errorf("FormatAll() = %q, want empty", got)
	}
}

func TestFormatAll(t *testing.T) {
	c := NewCollector(false)
	c.Warn(CodeUnsupportedSyntax, "a.d.ts", 1, 2, "first")
	c.Error(CodeHoistCollision, "a.d.ts", 3, 4, "second")

	out := c.FormatAll()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("FormatAll() produced %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "[D1001] first") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "[D2001] second") {
		t.Errorf("second line = %q", lines[1])
	}
}
