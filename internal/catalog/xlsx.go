package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names read from a workbook catalog.
const (
	TopicsSheet    = "Topics"
	QuestionsSheet = "Questions"
)

// LoadXLSX reads a catalog from an Excel workbook. The Topics sheet holds
// id, name, image columns; the Questions sheet holds id, topic_id, text,
// four option columns and answer_index. The first row of each sheet is a
// header and is skipped.
func LoadXLSX(path string) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	topicRows, err := f.GetRows(TopicsSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s sheet: %w", TopicsSheet, err)
	}
	questionRows, err := f.GetRows(QuestionsSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s sheet: %w", QuestionsSheet, err)
	}

	var topics []Topic
	for i, row := range skipHeader(topicRows) {
		if isBlank(row) {
			continue
		}
		t, err := parseTopicRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", TopicsSheet, i+2, err)
		}
		topics = append(topics, t)
	}

	var questions []Question
	for i, row := range skipHeader(questionRows) {
		if isBlank(row) {
			continue
		}
		q, err := parseQuestionRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", QuestionsSheet, i+2, err)
		}
		questions = append(questions, q)
	}

	return New(topics, questions)
}

func parseTopicRow(row []string) (Topic, error) {
	if len(row) < 2 {
		return Topic{}, fmt.Errorf("expected at least 2 columns, got %d", len(row))
	}
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return Topic{}, fmt.Errorf("topic id: %w", err)
	}
	t := Topic{ID: id, Name: strings.TrimSpace(row[1])}
	if len(row) > 2 {
		t.Image = strings.TrimSpace(row[2])
	}
	return t, nil
}

func parseQuestionRow(row []string) (Question, error) {
	const want = 4 + OptionCount
	if len(row) < want {
		return Question{}, fmt.Errorf("expected %d columns, got %d", want, len(row))
	}
	ints := make([]int, 0, 3)
	for _, cell := range []string{row[0], row[1], row[3+OptionCount]} {
		n, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			return Question{}, fmt.Errorf("numeric column: %w", err)
		}
		ints = append(ints, n)
	}
	return Question{
		ID:          ints[0],
		TopicID:     ints[1],
		Text:        strings.TrimSpace(row[2]),
		Options:     append([]string(nil), row[3:3+OptionCount]...),
		AnswerIndex: ints[2],
	}, nil
}

func skipHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
