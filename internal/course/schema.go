package course

// courseSchema is the contract the content generator is prompted to follow.
const courseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title", "introduction", "modules", "quiz"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "introduction": {"type": "string"},
    "modules": {
      "type": "array",
      "minItems": 3,
      "maxItems": 4,
      "items": {
        "type": "object",
        "required": ["title", "content", "imageKeyword", "keyPoints"],
        "properties": {
          "title": {"type": "string"},
          "content": {"type": "string"},
          "imageKeyword": {"type": "string"},
          "keyPoints": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "quiz": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["question", "options", "correctAnswer"],
        "properties": {
          "question": {"type": "string"},
          "options": {
            "type": "array",
            "minItems": 4,
            "maxItems": 4,
            "items": {"type": "string"}
          },
          "correctAnswer": {"type": "integer", "minimum": 0, "maximum": 3}
        }
      }
    }
  }
}`
