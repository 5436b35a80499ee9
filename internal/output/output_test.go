package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/uia-mcp/internal/model"
)

func sampleResult() ElementResult {
	return ElementResult{
		Success: true,
		Found:   true,
		Element: Info(model.Element{Name: "OK", ClassName: "Button", ControlType: "button", Bounds: [4]int{10, 20, 100, 30}}),
	}
}

func TestFprint_YAML(t *testing.T) {
	old := OutputFormat
	defer func() { OutputFormat = old }()

	OutputFormat = FormatYAML
	var buf bytes.Buffer
	if err := Fprint(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	output := buf.String()

	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}

	var decoded ElementResult
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Element == nil || decoded.Element.Name != "OK" {
		t.Errorf("element: got %+v, want name OK", decoded.Element)
	}
}

func TestFprint_JSONCompactAndPretty(t *testing.T) {
	oldFormat, oldPretty := OutputFormat, PrettyOutput
	defer func() { OutputFormat, PrettyOutput = oldFormat, oldPretty }()

	OutputFormat = FormatJSON
	for _, pretty := range []bool{false, true} {
		PrettyOutput = pretty
		var buf bytes.Buffer
		if err := Fprint(&buf, sampleResult()); err != nil {
			t.Fatal(err)
		}
		lines := bytes.Count(buf.Bytes(), []byte("\n"))
		if pretty && lines <= 1 {
			t.Errorf("pretty output should be multi-line, got:\n%s", buf.String())
		}
		if !pretty && lines != 1 {
			t.Errorf("compact output should be single line, got:\n%s", buf.String())
		}
		var decoded ElementResult
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
	}
}

func TestFprint_UnknownFormat(t *testing.T) {
	old := OutputFormat
	defer func() { OutputFormat = old }()

	OutputFormat = "xml"
	var buf bytes.Buffer
	if err := Fprint(&buf, sampleResult()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("ParseFormat(toml): expected error")
	}
}

func TestElementResult_OmitEmpty(t *testing.T) {
	s, err := JSON(ElementResult{Success: true})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["element"]; ok {
		t.Error("nil element should be omitted")
	}
	if _, ok := m["message"]; ok {
		t.Error("empty message should be omitted")
	}
	if found, ok := m["found"]; !ok || found != false {
		t.Errorf("found should always be present and false, got %v", found)
	}
}
