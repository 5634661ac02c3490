package llmagent

import (
	"encoding/json"
	"fmt"
)

// RenderResult turns a tool's return value into the content of a tool
// message. Strings pass through; everything else is sent as JSON.
func RenderResult(v any) string {
	switch value := v.(type) {
	case nil:
		return "null"
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	}
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(out)
}
