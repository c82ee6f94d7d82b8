package gen

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/go-openapi/inflect"
)

var (
	// Funcs are the predefined template functions used by the codegen templates.
	Funcs = template.FuncMap{
		"add":         add,
		"allZero":     allZero,
		"camel":       camel,
		"dict":        dict,
		"extend":      extend,
		"fail":        fail,
		"get":         get,
		"hasField":    hasField,
		"hasImport":   hasImport,
		"hasKey":      hasKey,
		"indexOf":     indexOf,
		"isNil":       isNil,
		"join":        join,
		"joinWords":   joinWords,
		"jsonString":  jsonString,
		"keys":        keys,
		"list":        list[any],
		"lower":       strings.ToLower,
		"pascal":      pascal,
		"plural":      plural,
		"quote":       quote,
		"receiver":    receiver,
		"set":         set,
		"singular":    singular,
		"snake":       snake,
		"tagLookup":   tagLookup,
		"toString":    toString,
		"trimPackage": trimPackage,
		"unset":       unset,
		"upper":       strings.ToUpper,
		"xrange":      xrange,
	}
	rules    = ruleset()
	acronyms = make(map[string]struct{})
	// importPkg lists the packages imported by the generated code.
	// Receiver names are checked against it to avoid shadowing an import.
	importPkg = map[string]string{
		"context": "context",
		"driver":  "database/sql/driver",
		"errors":  "errors",
		"fmt":     "fmt",
		"io":      "io",
		"sql":     "database/sql",
		"strconv": "strconv",
		"strings": "strings",
	}
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Add common initialisms from golint.
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC", "MB",
		"QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO", "TCP",
		"TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM",
		"XML", "XMPP", "XSRF", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// AddAcronym adds an initialism to the global ruleset. Pascal and camel
// conversions keep registered acronyms upper-cased.
func AddAcronym(word string) {
	acronyms[word] = struct{}{}
	rules.AddAcronym(word)
}

// pascal converts the given name into a PascalCase.
//
//	user_info  => UserInfo
//	full_name  => FullName
//	user_id    => UserID
//	full-admin => FullAdmin
func pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	return pascalWords(words)
}

func pascalWords(words []string) string {
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
		} else {
			words[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// camel converts the given name into a camelCase.
//
//	user_info  => userInfo
//	full_name  => fullName
//	user_id    => userID
func camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 1 {
		return strings.ToLower(words[0])
	}
	return strings.ToLower(words[0]) + pascalWords(words[1:])
}

// snake converts the given identifier into a snake_case.
//
//	Username  => username
//	FullName  => full_name
//	HTTPCode  => http_code
func snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' if it is not a start or end of a word, current letter
		// is uppercase, and previous letter is lowercase (cases like:
		// "UserInfo"), or next letter is also a lowercase and previous
		// letter is not "_".
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(rune(s[i-1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteString(strings.ToLower(string(r)))
	}
	return b.String()
}

// isSeparator reports if the given rune separates words in an identifier.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// receiver returns the receiver name of the given type.
//
//	[]T       => t
//	User      => u
//	UserQuery => uq
func receiver(s string) (r string) {
	// Trim invalid tokens for identifier prefix.
	s = strings.Trim(s, "[]*&0123456789")
	parts := strings.Split(snake(s), "_")
	min := len(parts[0])
	for _, w := range parts[1:] {
		if len(w) < min {
			min = len(w)
		}
	}
	for i := 1; i < min; i++ {
		r := parts[0][:i]
		for _, w := range parts[1:] {
			r += w[:i]
		}
		if _, ok := importPkg[r]; !ok {
			s = r
			break
		}
	}
	name := strings.ToLower(s)
	if name == "" {
		return "_"
	}
	return name
}

// plural returns the plural form of the given name. Names without a
// plural form get a "Slice" suffix instead.
func plural(name string) string {
	p := rules.Pluralize(name)
	if p == name {
		p += "Slice"
	}
	return p
}

// singular returns the singular form of the given name.
func singular(name string) string {
	return rules.Singularize(name)
}

// quote wraps string values with double quotes. Non-string values are
// returned as-is.
func quote(v any) any {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return v
}

// join returns a sorted, joined copy of the given strings.
func join(a []string, sep string) string {
	sorted := make([]string, len(a))
	copy(sorted, a)
	sort.Strings(sorted)
	return strings.Join(sorted, sep)
}

// joinWords joins the words with spaces, wrapping lines that pass the
// given size with a newline and a leading space.
func joinWords(words []string, size int) string {
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	n := len(words[0])
	for _, w := range words[1:] {
		if n+len(w)+1 > size {
			b.WriteString("\n ")
			n = len(w) + 1
		} else {
			b.WriteString(" ")
			n += len(w) + 1
		}
		b.WriteString(w)
	}
	return b.String()
}

// indexOf returns the index of the given value in the slice, or -1 if
// it is not present.
func indexOf(s []string, v string) int {
	return slices.Index(s, v)
}

// xrange returns a slice of the ints in the range [0, n).
func xrange(n int) (a []int) {
	for i := 0; i < n; i++ {
		a = append(a, i)
	}
	return
}

// add returns the sum of its arguments.
func add(xs ...int) (n int) {
	for _, x := range xs {
		n += x
	}
	return
}

type (
	// typeScope wraps the Type object with extended scope.
	typeScope struct {
		*Type
		Scope map[any]any
	}

	// graphScope wraps the Graph object with extended scope.
	graphScope struct {
		*Graph
		Scope map[any]any
	}
)

// extend extends the parameters of a template execution with a scope of
// key-value pairs. Nested calls shadow outer bindings.
func extend(v any, kv ...any) (any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("invalid number of parameters: %d", len(kv))
	}
	scope := make(map[any]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		scope[kv[i]] = kv[i+1]
	}
	switch v := v.(type) {
	case *Type:
		return &typeScope{Type: v, Scope: scope}, nil
	case *Graph:
		return &graphScope{Graph: v, Scope: scope}, nil
	case *typeScope:
		for k, val := range v.Scope {
			if _, ok := scope[k]; !ok {
				scope[k] = val
			}
		}
		return &typeScope{Type: v.Type, Scope: scope}, nil
	case *graphScope:
		for k, val := range v.Scope {
			if _, ok := scope[k]; !ok {
				scope[k] = val
			}
		}
		return &graphScope{Graph: v.Graph, Scope: scope}, nil
	default:
		return nil, fmt.Errorf("invalid type for extend: %T", v)
	}
}

// dict creates a dictionary from the given key-value pairs.
func dict(kv ...any) map[string]any {
	d := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k := toString(kv[i])
		if i+1 < len(kv) {
			d[k] = kv[i+1]
		} else {
			d[k] = ""
		}
	}
	return d
}

func get(d map[string]any, k string) any {
	if v, ok := d[k]; ok {
		return v
	}
	return ""
}

func set(d map[string]any, k string, v any) map[string]any {
	d[k] = v
	return d
}

func unset(d map[string]any, k string) map[string]any {
	delete(d, k)
	return d
}

func hasKey(d map[string]any, k string) bool {
	_, ok := d[k]
	return ok
}

func list[T any](vs ...T) []T {
	return vs
}

// fail unconditionally returns an error with the given text.
func fail(msg string) (string, error) {
	return "", errors.New(msg)
}

// jsonString returns the JSON encoding of the given value as a string.
func jsonString(v any) (string, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// allZero reports if all given values are their type's zero value.
func allZero(vs ...any) bool {
	for _, v := range vs {
		rv := reflect.ValueOf(v)
		if rv.IsValid() && !rv.IsZero() {
			return false
		}
	}
	return true
}

// isNil reports if the given value is untyped nil or a nil-able kind
// holding nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// hasField reports if the given struct has a field with the given name.
func hasField(v any, name string) bool {
	rv := reflect.Indirect(reflect.ValueOf(v))
	return rv.Kind() == reflect.Struct && rv.FieldByName(name).IsValid()
}

// hasImport reports if the generated code imports the given package.
func hasImport(name string) bool {
	_, ok := importPkg[name]
	return ok
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// trimPackage trims the given package qualifier from the identifier.
func trimPackage(ident, pkg string) string {
	return strings.TrimPrefix(ident, pkg+".")
}

// tagLookup returns the value of the given name in a struct tag.
func tagLookup(tag, name string) string {
	t, _ := reflect.StructTag(tag).Lookup(name)
	return t
}

// keys returns the sorted keys of a map value.
func keys(v reflect.Value) ([]string, error) {
	v = reflect.Indirect(v)
	if v.Kind() != reflect.Map {
		return nil, fmt.Errorf("expect map for keys, got: %v", v.Kind())
	}
	ks := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		ks = append(ks, toString(k.Interface()))
	}
	sort.Strings(ks)
	return ks, nil
}
