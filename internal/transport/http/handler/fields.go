package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func init() {
	// Keep JSON numbers as json.Number so integers and floats stay distinguishable.
	binding.EnableDecoderUseNumber = true
}

var errNotInteger = errors.New("value is not an integer")

// fields is a request body flattened to name -> value. JSON bodies keep their
// types (numbers as json.Number); form bodies yield strings.
type fields map[string]any

func readFields(c *gin.Context) (fields, error) {
	contentType := c.ContentType()
	if contentType == binding.MIMEJSON || strings.HasSuffix(contentType, "+json") {
		f := fields{}
		if err := c.ShouldBindWith(&f, binding.JSON); err != nil {
			if errors.Is(err, io.EOF) {
				return fields{}, nil
			}
			return nil, fmt.Errorf("bind json body failed: %w", err)
		}
		return f, nil
	}

	// Form binding leaves the last value for repeated keys.
	form := map[string]string{}
	formBinding := binding.FormPost
	if contentType == binding.MIMEMultipartPOSTForm {
		formBinding = binding.Form
	}
	if err := c.ShouldBindWith(&form, formBinding); err != nil {
		return nil, fmt.Errorf("bind form body failed: %w", err)
	}

	f := make(fields, len(form))
	for key, value := range form {
		f[key] = value
	}
	return f, nil
}

// text renders the value as a string; absent and null give "".
func (f fields) text(key string) string {
	switch v := f[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// truthy reports whether the key is present with a non-empty, non-zero value.
func (f fields) truthy(key string) bool {
	raw, ok := f[key]
	if !ok {
		return false
	}
	switch v := raw.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		n, err := v.Float64()
		return err != nil || n != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// integer accepts JSON integers, integral JSON floats and numeric strings.
func (f fields) integer(key string) (int, error) {
	switch v := f[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return clampInt(n)
		}
		n, err := v.Float64()
		if err != nil || n != math.Trunc(n) {
			return 0, errNotInteger
		}
		return clampInt(int64(n))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errNotInteger
		}
		return n, nil
	default:
		return 0, errNotInteger
	}
}

func clampInt(n int64) (int, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, errNotInteger
	}
	return int(n), nil
}
