package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"timewalker/internal/ptysession"
	"timewalker/internal/twerr"
)

const schemaResourceURL = "timewalker://scenario-schema.json"

var compiledSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResourceURL, strings.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("scenario: invalid embedded schema: %v", err))
	}
	schema, err := compiler.Compile(schemaResourceURL)
	if err != nil {
		panic(fmt.Sprintf("scenario: schema compile failed: %v", err))
	}
	compiledSchema = schema
}

// LoadFile reads and parses a scenario document from path.
func LoadFile(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w: %v", twerr.ErrIO, err)
	}
	return Load(raw)
}

// Load parses and schema-validates a scenario document from raw JSON
// bytes.
func Load(raw []byte) (Scenario, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario json: %w: %v", twerr.ErrInvalidArgument, err)
	}

	if err := compiledSchema.Validate(data); err != nil {
		return Scenario{}, fmt.Errorf("scenario schema validation: %w: %v", twerr.ErrSchemaValidation, err)
	}

	metaRaw, _ := data["meta"].(map[string]any)
	meta, err := parseMeta(metaRaw)
	if err != nil {
		return Scenario{}, err
	}

	stepsRaw, _ := data["steps"].([]any)
	steps := make([]Step, 0, len(stepsRaw))
	for _, raw := range stepsRaw {
		stepMap, _ := raw.(map[string]any)
		step, err := parseStep(stepMap)
		if err != nil {
			return Scenario{}, err
		}
		steps = append(steps, step)
	}

	name, _ := data["name"].(string)
	description, _ := data["description"].(string)

	return Scenario{Meta: meta, Steps: steps, Name: name, Description: description}, nil
}

func parseMeta(raw map[string]any) (Meta, error) {
	command := stringSlice(raw["command"])
	if len(command) == 0 {
		return Meta{}, fmt.Errorf("scenario meta: %w: command must be non-empty", twerr.ErrInvalidArgument)
	}

	env := map[string]string{}
	if envRaw, ok := raw["env"].(map[string]any); ok {
		for k, v := range envRaw {
			env[k] = fmt.Sprintf("%v", v)
		}
	}

	ptySize := ptysession.DefaultSize
	if ptyRaw, ok := raw["pty"].(map[string]any); ok {
		ptySize = ptysession.Size{
			Rows: int(asFloat(ptyRaw["rows"])),
			Cols: int(asFloat(ptyRaw["cols"])),
		}
	}

	timeout := 120 * time.Second
	if v, ok := raw["timeout"]; ok {
		timeout = durationFromSeconds(asFloat(v))
	}
	readTimeout := 200 * time.Millisecond
	if v, ok := raw["read_timeout"]; ok {
		readTimeout = durationFromSeconds(asFloat(v))
	}

	cwd, _ := raw["cwd"].(string)
	outputDir, _ := raw["output_dir"].(string)
	identifier, _ := raw["id"].(string)

	return Meta{
		Command:     command,
		Cwd:         cwd,
		Env:         env,
		PtySize:     ptySize,
		Timeout:     timeout,
		ReadTimeout: readTimeout,
		OutputDir:   outputDir,
		Identifier:  identifier,
	}, nil
}

func parseStep(raw map[string]any) (Step, error) {
	kind, _ := raw["type"].(string)
	switch StepKind(kind) {
	case StepCommand:
		step := Step{
			Kind:        StepCommand,
			Run:         raw["run"].(string),
			SendNewline: true,
		}
		if mark, ok := raw["mark"].(string); ok {
			step.Mark = mark
		}
		if expectRaw, ok := raw["expect"].(map[string]any); ok {
			step.Expect = parseExpectation(expectRaw)
		}
		if v, ok := raw["timeout"]; ok {
			d := durationFromSeconds(asFloat(v))
			step.Timeout = &d
		}
		if v, ok := raw["delay"]; ok {
			step.Delay = durationFromSeconds(asFloat(v))
		}
		if v, ok := raw["send_newline"].(bool); ok {
			step.SendNewline = v
		}
		return step, nil

	case StepWait:
		expectRaw, ok := raw["expect"].(map[string]any)
		if !ok {
			return Step{}, fmt.Errorf("wait step: %w: requires expect", twerr.ErrInvalidArgument)
		}
		timeout := 10 * time.Second
		if v, ok := raw["timeout"]; ok {
			timeout = durationFromSeconds(asFloat(v))
		}
		return Step{Kind: StepWait, Expect: parseExpectation(expectRaw), Timeout: &timeout}, nil

	case StepSnapshot:
		return Step{Kind: StepSnapshot, Label: raw["label"].(string)}, nil

	case StepResize:
		return Step{
			Kind: StepResize,
			Rows: int(asFloat(raw["rows"])),
			Cols: int(asFloat(raw["cols"])),
		}, nil

	default:
		return Step{}, fmt.Errorf("scenario step: %w: unsupported step kind %q", twerr.ErrInvalidArgument, kind)
	}
}

func parseExpectation(raw map[string]any) *Expectation {
	exp := &Expectation{}
	if v, ok := raw["contains"].(string); ok {
		exp.Contains = v
	}
	if v, ok := raw["regex"].(string); ok {
		exp.Regex = v
	}
	return exp
}

func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

func durationFromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
