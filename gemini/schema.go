package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrBadModelReply marks a model reply that is not valid JSON, or that does
// not match the schema the prompt asked for. There is no repair or retry;
// callers surface it as a formatting error.
var ErrBadModelReply = errors.New("model reply is not valid for the expected schema")

// decodeReply strips markdown fencing from a model reply, checks it against
// the feature's JSON schema and unmarshals it into out.
func decodeReply(raw, schema string, out interface{}) error {
	text := cleanJSON(raw)

	var doc interface{}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrBadModelReply, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadModelReply, err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrBadModelReply, strings.Join(msgs, "; "))
	}

	return json.Unmarshal([]byte(text), out)
}

const parsedResumeSchema = `{
  "type": "object",
  "required": ["skills", "experience", "projects", "summary"],
  "properties": {
    "skills":     {"type": "array", "items": {"type": "string"}},
    "experience": {"type": "array", "items": {"type": "string"}},
    "projects":   {"type": "array", "items": {"type": "string"}},
    "summary":    {"type": "string"}
  }
}`

const atsReportSchema = `{
  "type": "object",
  "required": ["overallScore", "sectionScores", "doneRight", "improvements", "summary", "detectedSections", "missingSections", "keywordsFound", "pageCount"],
  "properties": {
    "overallScore": {"type": "number", "minimum": 0, "maximum": 100},
    "sectionScores": {
      "type": "object",
      "required": ["contentSections", "grammarLanguage", "formattingStructure", "atsOptimization", "pageLength", "linksContactInfo"],
      "properties": {
        "contentSections":     {"type": "number", "minimum": 0, "maximum": 30},
        "grammarLanguage":     {"type": "number", "minimum": 0, "maximum": 15},
        "formattingStructure": {"type": "number", "minimum": 0, "maximum": 25},
        "atsOptimization":     {"type": "number", "minimum": 0, "maximum": 15},
        "pageLength":          {"type": "number", "minimum": 0, "maximum": 5},
        "linksContactInfo":    {"type": "number", "minimum": 0, "maximum": 10}
      }
    },
    "doneRight":        {"type": "array", "items": {"type": "string"}},
    "improvements":     {"type": "array", "items": {"type": "string"}},
    "summary":          {"type": "string"},
    "detectedSections": {"type": "array", "items": {"type": "string"}},
    "missingSections":  {"type": "array", "items": {"type": "string"}},
    "keywordsFound":    {"type": "array", "items": {"type": "string"}},
    "pageCount":        {"type": "number", "minimum": 1}
  }
}`

const roadmapSchema = `{
  "type": "object",
  "required": ["currentPosition", "targetPosition", "strategyOverview", "steps", "skillsToDevelop", "longTermVision"],
  "properties": {
    "currentPosition":  {"type": "string"},
    "targetPosition":   {"type": "string"},
    "strategyOverview": {"type": "string"},
    "steps": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title", "subSteps"],
        "properties": {
          "title":    {"type": "string"},
          "subSteps": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "skillsToDevelop": {"type": "array", "items": {"type": "string"}},
    "longTermVision":  {"type": "array", "items": {"type": "string"}}
  }
}`

const questionsSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 5,
      "maxItems": 5,
      "items": {"type": "string"}
    }
  }
}`

const responseAnalysisSchema = `{
  "type": "object",
  "required": ["clarity", "structure", "depth", "responseSummary", "expectedAnswer"],
  "properties": {
    "clarity":         {"type": "number", "minimum": 0, "maximum": 10},
    "structure":       {"type": "number", "minimum": 0, "maximum": 10},
    "depth":           {"type": "number", "minimum": 0, "maximum": 10},
    "responseSummary": {"type": "string"},
    "expectedAnswer":  {"type": "string"}
  }
}`
