package faceit

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Options are caller-supplied parameters forwarded verbatim: as the query
// string of GET calls and as the JSON body of POST and PUT calls. Typical
// keys are offset, limit, nickname, game, country.
type Options map[string]any

// Values renders the options as query parameters. Slices become repeated
// keys and nil values are dropped.
func (o Options) Values() url.Values {
	values := url.Values{}
	for key, value := range o {
		for _, item := range formatOption(value) {
			values.Add(key, item)
		}
	}
	return values
}

func formatOption(value any) []string {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		return []string{typed}
	case json.Number:
		return []string{typed.String()}
	case []string:
		return typed
	case bool:
		return []string{strconv.FormatBool(typed)}
	case int:
		return []string{strconv.Itoa(typed)}
	case int32:
		return []string{strconv.FormatInt(int64(typed), 10)}
	case int64:
		return []string{strconv.FormatInt(typed, 10)}
	case uint:
		return []string{strconv.FormatUint(uint64(typed), 10)}
	case uint64:
		return []string{strconv.FormatUint(typed, 10)}
	case float64:
		return []string{strconv.FormatFloat(typed, 'f', -1, 64)}
	case float32:
		return []string{strconv.FormatFloat(float64(typed), 'f', -1, 32)}
	case []int:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			out = append(out, strconv.Itoa(item))
		}
		return out
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			out = append(out, formatOption(item)...)
		}
		return out
	case fmt.Stringer:
		return []string{typed.String()}
	default:
		return []string{fmt.Sprint(typed)}
	}
}

// mergeQuery keeps the parameters a route embeds and appends the caller's
// options after them. A key present in both is sent with both values; the
// upstream decides which one wins.
func mergeQuery(embedded url.Values, opts Options) url.Values {
	merged := url.Values{}
	for key, values := range embedded {
		merged[key] = append([]string(nil), values...)
	}
	for key, values := range opts.Values() {
		for _, value := range values {
			merged.Add(key, value)
		}
	}
	return merged
}
