package openai

import (
	"fmt"
	"strings"

	"github.com/pondside/docbrief/ai"
)

const summaryPromptTemplate = `You summarize documents. Write a concise summary of the text the user
provides, at most %d words, as plain prose. Capture the document's subject,
purpose, and most important points. Do not include a preamble, headings,
bullet points, or any commentary about the summarization itself. Respond
with the summary text only.`

const classificationResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "label": {
            "type": "string"
          },
          "score": {
            "type": "number",
            "minimum": 0,
            "maximum": 1
          }
        },
        "required": ["label", "score"],
        "additionalProperties": false
      }
    }
  },
  "required": ["categories"],
  "additionalProperties": false
}`

const classificationPromptTemplate = `Classify the given document text into topics and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Label must match exactly one of the listed values: %s.
- Score is a number from 0 (unrelated) to 1 (clearly the document's topic). Rate based on how well the label describes the document as a whole.
- Return at most %d categories, the best matches only, ordered from highest to lowest score.
- Do not repeat a label.
- If no topic fits, return "categories": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "Quarterly revenue grew 12%% driven by subscription renewals. Operating margin improved..."
Output:
{
  "categories": [
    {"label":"finance","score":0.93},
    {"label":"business","score":0.71}
  ]
}

Example:
Input: "The patient cohort received 40mg doses across a twelve week double-blind trial..."
Output:
{
  "categories": [
    {"label":"health","score":0.95},
    {"label":"science","score":0.82}
  ]
}`

// buildSummaryPrompt creates the summarizer system prompt.
func buildSummaryPrompt(maxWords int) string {
	return fmt.Sprintf(summaryPromptTemplate, maxWords)
}

// buildClassificationPrompt creates the classifier system prompt with the
// label set embedded.
func buildClassificationPrompt() string {
	return fmt.Sprintf(classificationPromptTemplate,
		classificationResponseSchema,
		strings.Join(ai.CategoryLabels, ", "),
		ai.MaxCategories)
}
