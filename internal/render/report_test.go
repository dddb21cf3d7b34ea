package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/sferro/chatlens/internal/analyze"
	"github.com/sferro/chatlens/internal/parse"
)

func TestReportContainsAllSections(t *testing.T) {
	color.NoColor = true

	data, err := analyze.Analyze(parse.Parse(
		"12/01/2023, 09:00 - Alice: Hello pizza lovers\n12/01/2023, 09:02 - Bob: Hi there, pizza tonight?"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	out := Report(data)

	for _, want := range []string{
		"WhatsApp Chat Analysis Report",
		"Key Metrics",
		"Avg Response Time: 2m",
		"Interest Level Analysis",
		"Alice",
		"Bob",
		"Most Used Words",
		"pizza",
		"Response Time Distribution",
		"Instant (<5m): 1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}

	// participants keep chat order
	if strings.Index(out, "Alice") > strings.Index(out, "Bob") {
		t.Fatal("participants out of order in report")
	}
}
