package utils

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"
)

var errTrailingJSONData = errors.New("invalid character after top-level JSON value")

// DecodeJSON decodes data keeping numbers as json.Number so record ids
// survive untouched. data must hold exactly one JSON value.
func DecodeJSON(data []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	err := decoder.Decode(v)
	if err != nil {
		return err
	}

	var trailing json.RawMessage
	err = decoder.Decode(&trailing)
	if !errors.Is(err, io.EOF) {
		return errTrailingJSONData
	}
	return nil
}
