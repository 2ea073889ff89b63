package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"

	"manga-cafe-billing/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errs.New("unknown output format")

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

type Formatter interface {
	Format(data any) (string, error)
}

// NewFormatter accepts "table", "json" or "yaml"; empty means table.
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatTable:
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, errs.Wrapf(ErrUnknownFormat, "%q (want table, json or yaml)", format)
	}
}

// TableFormatter renders slices of structs as aligned columns and single
// structs as "Name: value" lines. Column names come from the `table` tag;
// `table:"-"` hides a field.
type TableFormatter struct{}

func (f *TableFormatter) Format(data any) (string, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice:
		if v.Len() == 0 {
			return "No rows.\n", nil
		}
		elem := indirect(v.Index(0))
		if elem.Kind() != reflect.Struct {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			break
		}
		cols := columns(elem.Type())
		headers := make([]string, len(cols))
		for i, c := range cols {
			headers[i] = c.name
		}
		fmt.Fprintln(w, strings.Join(headers, "\t"))

		for i := 0; i < v.Len(); i++ {
			row := indirect(v.Index(i))
			vals := make([]string, len(cols))
			for j, c := range cols {
				vals[j] = fmt.Sprintf("%v", row.Field(c.index).Interface())
			}
			fmt.Fprintln(w, strings.Join(vals, "\t"))
		}
	case reflect.Struct:
		for _, c := range columns(v.Type()) {
			fmt.Fprintf(w, "%s:\t%v\n", c.name, v.Field(c.index).Interface())
		}
	default:
		fmt.Fprintln(w, data)
	}

	if err := w.Flush(); err != nil {
		return "", errs.Wrap(err, "flush table")
	}
	return buf.String(), nil
}

type column struct {
	name  string
	index int
}

func columns(t reflect.Type) []column {
	cols := make([]column, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := strings.ToUpper(field.Name)
		if tag, ok := field.Tag.Lookup("table"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		cols = append(cols, column{name: name, index: i})
	}
	return cols
}

func indirect(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Ptr {
		return v.Elem()
	}
	return v
}

type JSONFormatter struct{}

func (f *JSONFormatter) Format(data any) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", errs.Wrap(err, "format json")
	}
	return string(b) + "\n", nil
}

type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(data any) (string, error) {
	b, err := yaml.Marshal(data)
	if err != nil {
		return "", errs.Wrap(err, "format yaml")
	}
	return string(b), nil
}
