package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"
)

// The documentation must stay in sync with itself: every topic listed in
// readme.md loads, and every topic file is listed in readme.md.
func TestTopics(t *testing.T) {
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("cannot read readme: %v", err)
	}

	var listed []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			listed = append(listed, strings.TrimSpace(strings.Trim(matches[1], "*`")))
		}
	}
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("cannot load topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopicsConcatenates(t *testing.T) {
	got, err := GetTopics("metrics", "lookbacks")
	if err != nil {
		t.Fatalf("GetTopics: %v", err)
	}
	if !strings.Contains(got, "# metrics") || !strings.Contains(got, "# lookbacks") {
		t.Errorf("concatenated topics miss a header:\n%s", got)
	}
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic succeeded on an unknown topic, want error")
	}
}
