package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
version: v1.2.0
topics:
  - id: 1
    name: Go Basics
questions:
  - id: 1
    topic_id: 1
    text: Which keyword starts a goroutine?
    options: [go, defer, async, spawn]
    answer_index: 0
`

func TestParseYAML(t *testing.T) {
	c, err := ParseYAML([]byte(validDoc))
	require.NoError(t, err)

	require.Len(t, c.Topics(), 1)
	qs := c.QuestionsForTopic(1)
	require.Len(t, qs, 1)
	assert.Equal(t, "go", qs[0].CorrectOption())
}

func TestParseYAML_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing version",
			doc:  "topics: []\nquestions: []\n",
		},
		{
			name: "unknown field",
			doc:  "version: v1\ntopics:\n  - {id: 1, name: A, color: red}\nquestions: []\n",
		},
		{
			name: "too few options",
			doc:  "version: v1\ntopics: [{id: 1, name: A}]\nquestions:\n  - {id: 1, topic_id: 1, text: q, options: [a, b], answer_index: 0}\n",
		},
		{
			name: "answer index too large",
			doc:  "version: v1\ntopics: [{id: 1, name: A}]\nquestions:\n  - {id: 1, topic_id: 1, text: q, options: [a, b, c, d], answer_index: 4}\n",
		},
		{
			name: "string id",
			doc:  "version: v1\ntopics: [{id: one, name: A}]\nquestions: []\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestParseYAML_RejectsOtherMajorVersion(t *testing.T) {
	doc := strings.Replace(validDoc, "v1.2.0", "v2.0.0", 1)
	_, err := ParseYAML([]byte(doc))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion), "got %v", err)
}

func TestParseYAML_RunsCatalogValidation(t *testing.T) {
	doc := `
version: v1
topics: [{id: 1, name: A}]
questions:
  - {id: 1, topic_id: 2, text: q, options: [a, b, c, d], answer_index: 0}
`
	_, err := ParseYAML([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent topic 2")
}

func TestParseYAML_Malformed(t *testing.T) {
	_, err := ParseYAML([]byte("version: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog YAML")
}

func TestEncodeYAML_RoundTrip(t *testing.T) {
	data, err := Default().EncodeYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: "+DocumentVersion)

	c, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, Default().Topics(), c.Topics())
	assert.Equal(t, Default().Questions(), c.Questions())
}
