package faceit

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinish_SuccessDecodesBody(t *testing.T) {
	t.Parallel()

	out, err := finish(exchange{method: http.MethodGet, url: "u", status: http.StatusOK, contentType: "application/json", body: []byte(`{"a":1}`)})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": json.Number("1")}, out)
}

func TestFinish_NumbersKeepTheirLiteral(t *testing.T) {
	t.Parallel()

	for _, contentType := range []string{"application/json", ""} {
		out, err := finish(exchange{method: http.MethodGet, url: "u", status: http.StatusOK, contentType: contentType,
			body: []byte(`{"id":9007199254740993,"big":18446744073709551616,"kd":1.31}`)})
		require.NoError(t, err)
		require.Equal(t, map[string]any{
			"id":  json.Number("9007199254740993"),
			"big": json.Number("18446744073709551616"),
			"kd":  json.Number("1.31"),
		}, out, contentType)
	}
}

func TestFinish_AnyNon2xxIsAnAPIError(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusMultipleChoices, http.StatusBadRequest, http.StatusUnauthorized, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		out, err := finish(exchange{method: http.MethodGet, url: "u", status: status, contentType: "application/json", body: []byte(`{"errors":[]}`)})
		if out != nil {
			t.Fatalf("status=%d: expected no body, got %v", status, out)
		}
		apiErr, ok := AsAPIError(err)
		if !ok {
			t.Fatalf("status=%d: expected *APIError, got %v", status, err)
		}
		if apiErr.StatusCode != status {
			t.Fatalf("expected status %d, got %d", status, apiErr.StatusCode)
		}
	}
}

func TestFinish_MalformedJSONErrorBodyFallsBackToText(t *testing.T) {
	t.Parallel()

	_, err := finish(exchange{method: http.MethodGet, url: "u", status: http.StatusUnauthorized, contentType: "application/json", body: []byte(`{"broken"`)})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, `{"broken"`, apiErr.Body)
	require.Contains(t, apiErr.Error(), "status=401")
}

func TestDecodeBody(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		contentType string
		body        string
		want        any
		wantErr     bool
	}{
		{name: "empty", contentType: "application/json", body: "  ", want: nil},
		{name: "json", contentType: "application/json; charset=utf-8", body: `["a"]`, want: []any{"a"}},
		{name: "problem json", contentType: "application/problem+json", body: `{"title":"x"}`, want: map[string]any{"title": "x"}},
		{name: "text", contentType: "text/plain", body: "hello", want: "hello"},
		{name: "sniffed json", contentType: "", body: `{"ok":true}`, want: map[string]any{"ok": true}},
		{name: "sniffed text", contentType: "", body: "hello", want: "hello"},
		{name: "invalid json", contentType: "application/json", body: "{", wantErr: true},
	}

	for _, tc := range cases {
		got, err := decodeBody(tc.contentType, []byte(tc.body))
		if tc.wantErr {
			require.Error(t, err, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got, tc.name)
	}
}

func TestAPIError_Transient(t *testing.T) {
	t.Parallel()

	cases := map[int]bool{
		0:                              true,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusNotFound:            false,
		http.StatusUnauthorized:        false,
	}
	for status, want := range cases {
		if got := (&APIError{StatusCode: status}).Transient(); got != want {
			t.Fatalf("status=%d: expected transient=%v, got %v", status, want, got)
		}
	}
}

func TestAPIError_MessageAbbreviatesLongBodies(t *testing.T) {
	t.Parallel()

	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	msg := (&APIError{StatusCode: http.StatusBadGateway, Method: http.MethodGet, URL: "u", RawBody: long}).Error()
	require.Less(t, len(msg), 320)
	require.Contains(t, msg, "...")
}
