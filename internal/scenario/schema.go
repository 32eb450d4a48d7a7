package scenario

// schemaJSON is the JSON Schema (draft 2020-12) a scenario document must
// satisfy before it is lowered into a Scenario.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["meta", "steps"],
  "properties": {
    "name": {"type": "string"},
    "description": {"type": "string"},
    "meta": {
      "type": "object",
      "required": ["command"],
      "properties": {
        "id": {"type": "string"},
        "command": {
          "type": "array",
          "items": {"type": "string"},
          "minItems": 1
        },
        "cwd": {"type": "string"},
        "env": {
          "type": "object",
          "additionalProperties": {"type": "string"}
        },
        "pty": {
          "type": "object",
          "properties": {
            "rows": {"type": "integer", "minimum": 1},
            "cols": {"type": "integer", "minimum": 1}
          },
          "required": ["rows", "cols"]
        },
        "timeout": {"type": "number", "minimum": 0},
        "read_timeout": {"type": "number", "minimum": 0},
        "output_dir": {"type": "string"}
      },
      "additionalProperties": false
    },
    "steps": {
      "type": "array",
      "minItems": 1,
      "items": {
        "oneOf": [
          {
            "type": "object",
            "required": ["type", "run"],
            "properties": {
              "type": {"const": "command"},
              "run": {"type": "string"},
              "mark": {"type": "string"},
              "expect": {"$ref": "#/$defs/expectation"},
              "timeout": {"type": "number", "minimum": 0},
              "delay": {"type": "number", "minimum": 0},
              "send_newline": {"type": "boolean"}
            },
            "additionalProperties": false
          },
          {
            "type": "object",
            "required": ["type", "expect"],
            "properties": {
              "type": {"const": "wait"},
              "expect": {"$ref": "#/$defs/expectation"},
              "timeout": {"type": "number", "minimum": 0}
            },
            "additionalProperties": false
          },
          {
            "type": "object",
            "required": ["type", "label"],
            "properties": {
              "type": {"const": "snapshot"},
              "label": {"type": "string"}
            },
            "additionalProperties": false
          },
          {
            "type": "object",
            "required": ["type", "rows", "cols"],
            "properties": {
              "type": {"const": "resize"},
              "rows": {"type": "integer", "minimum": 1},
              "cols": {"type": "integer", "minimum": 1}
            },
            "additionalProperties": false
          }
        ]
      }
    }
  },
  "additionalProperties": false,
  "$defs": {
    "expectation": {
      "type": "object",
      "properties": {
        "contains": {"type": "string"},
        "regex": {"type": "string"}
      },
      "minProperties": 1,
      "additionalProperties": false
    }
  }
}`
