package kernel

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/zjykzk/sparkml-client-go"
)

// Embed converts the value into the text which can be put into a statement
//
// The reference is embedded as its variable name, the nil as null, the numbers and the
// booleans as literals, the string is quoted. The nil slice is embedded as [], the nil map
// as {}, the []byte as the array of its numbers, not the base64 string. The other values
// are embedded as their json representation.
func Embed(v interface{}) (string, error) {
	if isNil(v) {
		return "null", nil
	}
	if text, ok := emptyCollection(v); ok {
		return text, nil
	}

	switch x := v.(type) {
	case Referencer:
		id := x.RefID()
		if err := sparkml.CheckIdentifier(string(id)); err != nil {
			return "", fmt.Errorf("bad reference %q: %w", id, err)
		}
		return string(id), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case []byte:
		return embedBytes(x), nil
	}

	bs, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func formatFloat(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("unsupported float value:%v", f)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize), nil
}

func embedBytes(bs []byte) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range bs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	b.WriteByte(']')
	return b.String()
}

// a nil proxy pointer is embedded as null, never dereferenced
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func emptyCollection(v interface{}) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return "[]", true
		}
	case reflect.Map:
		if rv.IsNil() {
			return "{}", true
		}
	}
	return "", false
}
