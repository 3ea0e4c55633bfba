package storage

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// TodolistItem is one checkbox line of a markdown todolist.
type TodolistItem struct {
	Line int
	Text string
	Done bool
}

var (
	uncheckedRegex = regexp.MustCompile(`^\s*(?:[-*]\s+)?\[ \]\s*(.+)$`)
	checkedRegex   = regexp.MustCompile(`^\s*(?:[-*]\s+)?\[[xX]\]\s*(.+)$`)
)

// ReadTodolist reads "[ ] text" and "[x] text" lines (optionally behind a
// "- " or "* " bullet) from a markdown file. Other lines are skipped.
func ReadTodolist(path string) ([]TodolistItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open todolist: %w", err)
	}
	defer file.Close()

	var items []TodolistItem
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if m := uncheckedRegex.FindStringSubmatch(line); len(m) > 1 {
			items = append(items, TodolistItem{Line: lineNum, Text: strings.TrimSpace(m[1])})
		} else if m := checkedRegex.FindStringSubmatch(line); len(m) > 1 {
			items = append(items, TodolistItem{Line: lineNum, Text: strings.TrimSpace(m[1]), Done: true})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading todolist: %w", err)
	}

	return items, nil
}
