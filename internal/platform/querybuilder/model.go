package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	cols := make([]string, 0, value.NumField())
	vals := make([]any, 0, value.NumField())
	appendModelFields(value, &cols, &vals)

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

// appendModelFields walks exported fields with a db tag. Untagged embedded
// structs are flattened into the parent.
func appendModelFields(value reflect.Value, cols *[]string, vals *[]any) {
	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if field.Anonymous && tag == "" && field.Type.Kind() == reflect.Struct {
			appendModelFields(value.Field(i), cols, vals)
			continue
		}
		if field.PkgPath != "" {
			continue
		}
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		*cols = append(*cols, col)
		*vals = append(*vals, value.Field(i).Interface())
	}
}
