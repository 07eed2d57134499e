package preprocess

import "testing"

func TestProcessNormalizesLineEndings(t *testing.T) {
	result := Process("Maria\r\n25 con 5\r\n", Config{})
	if result.Text == "" {
		t.Fatal("expected non-empty result")
	}
	for _, r := range result.Text {
		if r == '\r' {
			t.Error("expected no carriage returns in processed text")
		}
	}
}

func TestProcessFoldsCaseExceptFirstLine(t *testing.T) {
	result := Process("Maria Perez\n25 CON 5\n", Config{})
	if result.Text == "" {
		t.Fatal("expected non-empty result")
	}
	lines := splitLines(result.Text)
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 lines, got %v", lines)
	}
	if lines[0] != "Maria Perez" {
		t.Errorf("expected the name line's casing preserved, got %q", lines[0])
	}
	if lines[1] != "25 con 5" {
		t.Errorf("expected the bet line lowercased, got %q", lines[1])
	}
}

func TestProcessNormalizesDecimalComma(t *testing.T) {
	result := Process("25 con 1,50", Config{DecimalSeparator: "."})
	if got, want := result.Text, "25 con 1.50"; got != want {
		t.Errorf("Process = %q, want %q", got, want)
	}
}

func TestProcessExpandsPatternsWhenAutoExpand(t *testing.T) {
	result := Process("25v con 5", Config{AutoExpand: true})
	if got, want := result.Text, "25 52 con 5"; got != want {
		t.Errorf("Process = %q, want %q", got, want)
	}
	if len(result.Notes) != 1 {
		t.Errorf("expected one expansion note, got %d", len(result.Notes))
	}
}

func TestProcessSkipsExpansionWhenDisabled(t *testing.T) {
	result := Process("25v con 5", Config{AutoExpand: false})
	if got, want := result.Text, "25v con 5"; got != want {
		t.Errorf("Process = %q, want %q", got, want)
	}
	if len(result.Notes) != 0 {
		t.Errorf("expected no expansion notes, got %d", len(result.Notes))
	}
}

func TestProcessKeepsAccentedNames(t *testing.T) {
	result := Process("María\n25 con 5", Config{})
	lines := splitLines(result.Text)
	if len(lines) < 1 || lines[0] != "María" {
		t.Errorf("expected accented name line preserved, got %q", lines)
	}

	result = Process("Andrés Pérez\n25 con 5", Config{})
	lines = splitLines(result.Text)
	if len(lines) < 1 || lines[0] != "Andrés Pérez" {
		t.Errorf("expected accented name line preserved, got %q", lines)
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	cfg := Config{AutoExpand: true, DecimalSeparator: "."}
	first := Process("Maria\n25v con 5,50", cfg)
	second := Process(first.Text, cfg)
	if first.Text != second.Text {
		t.Errorf("Process is not idempotent: %q != %q", first.Text, second.Text)
	}
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	lines = append(lines, text[start:])
	return lines
}
