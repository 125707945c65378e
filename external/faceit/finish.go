package faceit

import (
	"bytes"
	"mime"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// exchange is a completed HTTP round trip.
type exchange struct {
	method      string
	url         string
	status      int
	contentType string
	body        []byte
}

// finish is the only place that classifies responses. A 2xx status yields the
// decoded body; anything else yields an *APIError with the status and body
// exactly as received.
func finish(ex exchange) (any, error) {
	if ex.status >= 200 && ex.status < 300 {
		decoded, err := decodeBody(ex.contentType, ex.body)
		if err != nil {
			return nil, crerr.Wrapf(ErrMapping, "decode %s %s response: %v", ex.method, ex.url, err)
		}
		return decoded, nil
	}

	decoded, err := decodeBody(ex.contentType, ex.body)
	if err != nil {
		decoded = string(ex.body)
	}
	return nil, &APIError{
		StatusCode: ex.status,
		Body:       decoded,
		RawBody:    ex.body,
		Method:     ex.method,
		URL:        ex.url,
	}
}

// decodeAPI keeps numbers as json.Number so 64-bit ids survive untouched.
var decodeAPI = sonic.Config{UseNumber: true}.Froze()

// decodeBody parses JSON bodies into generic values and passes anything else
// through as text. Without a content type the body is parsed when it looks
// like JSON.
func decodeBody(contentType string, raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	if strings.TrimSpace(contentType) == "" {
		var out any
		if err := decodeAPI.Unmarshal(raw, &out); err != nil {
			return string(raw), nil
		}
		return out, nil
	}

	if !isJSONContentType(contentType) {
		return string(raw), nil
	}

	var out any
	if err := decodeAPI.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	}
	return strings.HasSuffix(mediaType, "/json") || strings.HasSuffix(mediaType, "+json")
}
