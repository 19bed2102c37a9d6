package concepts

import "strings"

const textPlaceholder = "{text}"

// promptTemplate is the fixed instruction sent with every batch. Only the batch text varies.
const promptTemplate = `Find and define the key concepts or terms found in the text below.

Text:
{text}

Respond with a single flat JSON object that maps each concept to its definition, for example:
{"concept": "definition", "another concept": "another definition"}
Do not wrap the JSON in backticks or code fences and do not add any other text.`

// BuildPrompt interpolates a batch's concatenated text into the prompt template.
func BuildPrompt(batchText string) string {
	return strings.Replace(promptTemplate, textPlaceholder, batchText, 1)
}
