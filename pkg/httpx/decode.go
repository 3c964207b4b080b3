package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBodyBytes caps JSON and form bodies.
const DefaultMaxBodyBytes = 10 << 20

var ErrEmptyBody = errors.New("httpx: empty request body")

// DecodeFields reads a JSON object or an urlencoded form into a generic map.
// Form fields keep only their first value.
func DecodeFields(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, DefaultMaxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		fields := make(map[string]any, len(r.PostForm))
		for k, v := range r.PostForm {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
		return fields, nil
	}

	fields := map[string]any{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBody
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return fields, nil
}

// Decode reads a JSON or form body into dst, which should be a pointer to a
// struct with json tags.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	fields, err := DecodeFields(w, r)
	if err != nil {
		return err
	}

	// Round-trip through JSON so both encodings share the struct tags.
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
