package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sharedrop/internal/common"
)

// UploadResponse is what the transport hands over on completion. The status
// code is informational only; the body decides success.
type UploadResponse struct {
	StatusCode int
	Body       string
}

// ResultKind discriminates an UploadResult.
type ResultKind int

const (
	ResultParseError ResultKind = iota
	ResultMissingField
	ResultSuccess
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultMissingField:
		return "missing_field"
	default:
		return "parse_error"
	}
}

// UploadResult is the parsed upload response. Success carries URL; the two
// failure kinds carry Err.
type UploadResult struct {
	Kind ResultKind
	URL  string
	Err  error
}

// ParseUploadResult interprets the upload response body. The locator lives
// in the "file" key and must be truthy (the same rule EmailResponse applies
// to "success"); non-string values are rendered as text.
func ParseUploadResult(body string) UploadResult {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return UploadResult{Kind: ResultParseError, Err: fmt.Errorf("%w: %v", common.ErrParseResponse, err)}
	}
	if v == nil {
		return UploadResult{Kind: ResultParseError, Err: fmt.Errorf("%w: null body", common.ErrParseResponse)}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return UploadResult{Kind: ResultMissingField, Err: common.ErrMissingFileURL}
	}
	file := obj["file"]
	if !truthy(file) {
		return UploadResult{Kind: ResultMissingField, Err: common.ErrMissingFileURL}
	}
	return UploadResult{Kind: ResultSuccess, URL: locatorText(file)}
}

func locatorText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

// ResourceID is the trailing path segment of a shared file URL.
func ResourceID(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}
