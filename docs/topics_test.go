package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var names []string
	topicRe := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRe.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			names = append(names, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	return names
}

// The readme is the table of contents; it must stay in sync with the topic
// files both ways.
func TestTopics_ReadmeInSync(t *testing.T) {
	listed := readmeTopics(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, name := range listed {
		if _, err := Topic(name); err != nil {
			t.Errorf("readme lists %q but it cannot be loaded: %v", name, err)
		}
	}

	available, err := Topics()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range available {
		found := false
		for _, l := range listed {
			if l == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestTopic_Star(t *testing.T) {
	all, err := Topic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Workflow", "# Cutoff", "# License Check"} {
		if !strings.Contains(all, want) {
			t.Errorf("Topic(*) missing %q", want)
		}
	}
}

func TestTopic_Unknown(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Fatal("unknown topic should fail")
	}
}

// Every fenced code block must carry a language tag, the terminal renderer
// needs it for highlighting.
func TestTopics_FencedBlocksTagged(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		root := goldmark.DefaultParser().Parse(text.NewReader(content))
		ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			if fcb, ok := n.(*ast.FencedCodeBlock); ok {
				if fcb.Info == nil || len(strings.TrimSpace(string(fcb.Info.Segment.Value(content)))) == 0 {
					t.Errorf("%s: fenced code block without a language tag", file)
				}
			}
			return ast.WalkContinue, nil
		})
	}
}
