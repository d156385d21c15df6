package handler

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/farmstand/internal/domain"
	"github.com/mitchellh/mapstructure"
)

var errInvalidBody = domain.NewApplicationError("invalid request body", http.StatusBadRequest)

// bindProduct reads a ProductInput from a JSON body or from url-encoded form
// values. Empty form fields are treated as absent so that the required rules
// apply to them.
func bindProduct(r *http.Request) (domain.ProductInput, error) {
	var input domain.ProductInput

	if ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); ct == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			return input, errInvalidBody
		}
		return input, nil
	}

	if err := r.ParseForm(); err != nil {
		return input, errInvalidBody
	}
	values := make(map[string]interface{}, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 && vs[0] != "" {
			values[k] = vs[0]
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           &input,
	})
	if err != nil {
		return input, err
	}
	if err := dec.Decode(values); err != nil {
		// Name and category are plain strings; only price can fail to decode.
		return input, domain.NewValidationError("Product", []domain.FieldError{
			{Field: "price", Rule: "number", Message: "Price must be a number"},
		})
	}
	return input, nil
}
