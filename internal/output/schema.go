// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/apex/log"
)

// maxSchemaDepth limits how far nested result types are walked.
const maxSchemaDepth = 2

// DumpSchema writes the sorted, dotted field names that the structured output
// of typ contains. If w is nil, os.Stdout is used.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fields := dumpSchemaWalker("", typ, 0)
	if len(fields) == 0 {
		log.Debugf("no json fields found for type: %s", typ.Name())
		return
	}

	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintln(w, f)
	}
}

// dumpSchemaWalker walks a struct type, or a pointer or slice of one,
// collecting json tag names. Embedded structs are flattened and slices of
// structs are walked with a [] suffix.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []string {
	for typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]string, 0)
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		if field.Anonymous {
			fields = append(fields, dumpSchemaWalker(holder, field.Type, depth)...)
			continue
		}

		tagValue, ok := field.Tag.Lookup("json")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tagValue, ",")
		if name == "" || name == "-" {
			continue
		}
		if holder != "" {
			name = holder + "." + name
		}
		fields = append(fields, name)

		if depth >= maxSchemaDepth {
			continue
		}

		ft := field.Type
		switch ft.Kind() {
		case reflect.Struct:
			fields = append(fields, dumpSchemaWalker(name, ft, depth+1)...)
		case reflect.Slice:
			if ft.Elem().Kind() == reflect.Struct {
				fields = append(fields, dumpSchemaWalker(name+"[]", ft.Elem(), depth+1)...)
			}
		}
	}

	return fields
}
