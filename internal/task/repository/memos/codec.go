package memos

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// rootTag marks every memo owned by this application.
const rootTag = "gestao"

var errNoTaskBlock = errors.New("memo has no task block")

var taskBlockRe = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// taskDoc is the JSON block embedded in a memo.
type taskDoc struct {
	DueDate      string `json:"dueDate"`
	Type         string `json:"type"`
	Work         string `json:"work"`
	Entity       string `json:"entity"`
	Company      string `json:"company"`
	ContractCode string `json:"contractCode"`
	Description  string `json:"description"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status"`
}

// encodeContent renders a task as a readable heading, a fenced JSON block
// holding the canonical fields, and the tags used for filtering.
func encodeContent(d taskDoc) (string, error) {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s · %s · %s\n\n", d.Type, d.Work, d.DueDate)
	if d.Description != "" {
		sb.WriteString(d.Description)
		sb.WriteString("\n\n")
	}
	sb.WriteString("```json\n")
	sb.Write(raw)
	sb.WriteString("\n```\n\n")
	sb.WriteString(strings.Join(tagsFor(d), " "))
	return sb.String(), nil
}

func decodeContent(content string) (taskDoc, error) {
	m := taskBlockRe.FindStringSubmatch(content)
	if m == nil {
		return taskDoc{}, errNoTaskBlock
	}
	var d taskDoc
	if err := json.Unmarshal([]byte(m[1]), &d); err != nil {
		return taskDoc{}, fmt.Errorf("decode task block: %w", err)
	}
	return d, nil
}

func tagsFor(d taskDoc) []string {
	tags := []string{"#" + rootTag}
	if d.Type != "" {
		tags = append(tags, fmt.Sprintf("#%s/%s", rootTag, strings.ToLower(d.Type)))
	}
	if d.Status != "" {
		tags = append(tags, fmt.Sprintf("#%s/%s", rootTag, d.Status))
	}
	return tags
}
