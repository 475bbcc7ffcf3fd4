package stdconsole

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	indexHeader  = "(index)"
	valuesHeader = "Values"
)

type tableRow struct {
	index  string
	cells  map[string]string
	order  []string
	scalar string
	isLeaf bool
}

// Table renders data as a box table on stdout. Slices, arrays, maps and
// structs are tabulated, anything else is logged as is. columns restricts
// and orders the displayed columns.
func (c *Console) Table(data any, columns ...string) error {
	headers, rows, ok := tabulate(data, columns)
	if !ok {
		return c.Log(data)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	return c.print(c.options.Stdout, t.String())
}

func tabulate(data any, columns []string) ([]string, [][]string, bool) {
	v, ok := deref(reflect.ValueOf(data))
	if !ok {
		return nil, nil, false
	}

	var entries []tableRow
	switch {
	case isList(v):
		for i := 0; i < v.Len(); i++ {
			entries = append(entries, rowOf(strconv.Itoa(i), v.Index(i)))
		}
	case v.Kind() == reflect.Map:
		for _, k := range sortedKeys(v) {
			entries = append(entries, rowOf(fmt.Sprint(k.Interface()), v.MapIndex(k)))
		}
	case v.Kind() == reflect.Struct:
		for _, f := range exportedFields(v) {
			entries = append(entries, rowOf(f, v.FieldByName(f)))
		}
	default:
		return nil, nil, false
	}

	keys := columns
	if len(keys) == 0 {
		seen := make(map[string]bool)
		for _, e := range entries {
			for _, k := range e.order {
				if !seen[k] {
					seen[k] = true
					keys = append(keys, k)
				}
			}
		}
	}

	hasValues := false
	for _, e := range entries {
		hasValues = hasValues || e.isLeaf
	}

	headers := append([]string{indexHeader}, keys...)
	if hasValues {
		headers = append(headers, valuesHeader)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := make([]string, 0, len(headers))
		row = append(row, e.index)
		for _, k := range keys {
			row = append(row, e.cells[k])
		}
		if hasValues {
			row = append(row, e.scalar)
		}
		rows = append(rows, row)
	}

	return headers, rows, true
}

func rowOf(index string, v reflect.Value) tableRow {
	r := tableRow{index: index, cells: make(map[string]string)}

	v, ok := deref(v)
	if !ok {
		r.isLeaf, r.scalar = true, "<nil>"
		return r
	}

	switch {
	case isList(v):
		for i := 0; i < v.Len(); i++ {
			k := strconv.Itoa(i)
			r.order = append(r.order, k)
			r.cells[k] = fmt.Sprint(v.Index(i).Interface())
		}
	case v.Kind() == reflect.Map:
		for _, k := range sortedKeys(v) {
			name := fmt.Sprint(k.Interface())
			r.order = append(r.order, name)
			r.cells[name] = fmt.Sprint(v.MapIndex(k).Interface())
		}
	case v.Kind() == reflect.Struct:
		for _, f := range exportedFields(v) {
			r.order = append(r.order, f)
			r.cells[f] = fmt.Sprint(v.FieldByName(f).Interface())
		}
	default:
		r.isLeaf, r.scalar = true, fmt.Sprint(v.Interface())
	}

	return r
}

func deref(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

// isList reports slices and arrays, except byte strings which print as values
func isList(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	return keys
}

func exportedFields(v reflect.Value) []string {
	t := v.Type()
	fields := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields = append(fields, t.Field(i).Name)
		}
	}
	return fields
}
