package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/queryops/queryops-golang"
)

type jsonFormat struct{}

// JSON returns the indented canonical JSON format.
func JSON() Format {
	return jsonFormat{}
}

func (jsonFormat) Output(w io.Writer, q queryops.QueryOperators) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(q)
}

type yamlFormat struct{}

// YAML returns the YAML format.
func YAML() Format {
	return yamlFormat{}
}

func (yamlFormat) Output(w io.Writer, q queryops.QueryOperators) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(q); err != nil {
		return err
	}
	return enc.Close()
}

type textFormat struct{}

// Text returns a format printing one aligned name/token pair per line.
// Text options are qualified with the TextOperators prefix.
func Text() Format {
	return textFormat{}
}

func (textFormat) Output(w io.Writer, q queryops.QueryOperators) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	m := q.Map()
	for _, name := range sortedKeys(m) {
		switch v := m[name].(type) {
		case string:
			fmt.Fprintf(tw, "%s\t%s\n", name, v)
		case map[string]any:
			for _, sub := range sortedKeys(v) {
				fmt.Fprintf(tw, "%s.%s\t%s\n", name, sub, v[sub])
			}
		}
	}
	return tw.Flush()
}
