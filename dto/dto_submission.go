package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Public form gönderimi; anahtarlar alan kimlikleridir
type SubmissionCreateDTO struct {
	Values map[string]StringList `json:"values"`
}

// FieldValues anahtarları alan kimliğine çevirir. Sayı olmayan anahtarlar atlanır.
// Aynı alan için "5" ve "field_5" birlikte gelirse anahtarlar sıralı işlenir,
// yani "field_5" değerleri sona eklenir.
func (d SubmissionCreateDTO) FieldValues() map[uint][]string {
	keys := make([]string, 0, len(d.Values))
	for key := range d.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make(map[uint][]string, len(d.Values))
	for _, key := range keys {
		list := d.Values[key]
		id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(key), FieldKeyPrefix), 10, 64)
		if err != nil || id == 0 {
			continue
		}
		values[uint(id)] = append(values[uint(id)], list...)
	}
	return values
}

// FieldKeyPrefix form-encoded gönderimlerde alan anahtarı öneki ("field_12").
const FieldKeyPrefix = "field_"

// ParseFieldKey "field_<id>" anahtarından alan kimliğini çıkarır.
func ParseFieldKey(key string) (uint, bool) {
	if !strings.HasPrefix(key, FieldKeyPrefix) {
		return 0, false
	}
	id, err := strconv.ParseUint(key[len(FieldKeyPrefix):], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// StringList tek bir değer ya da değer dizisi kabul eder.
// Metin dışı skalerler JSON gösterimleriyle saklanır.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		list := make(StringList, 0, len(raw))
		for _, item := range raw {
			value, ok, err := scalarString(item)
			if err != nil {
				return err
			}
			if ok {
				list = append(list, value)
			}
		}
		*l = list
		return nil
	}
	value, ok, err := scalarString(data)
	if err != nil {
		return err
	}
	if ok {
		*l = StringList{value}
	} else {
		*l = nil
	}
	return nil
}

func scalarString(data json.RawMessage) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	}
	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		return "", false, errors.New("gönderim değeri metin, sayı veya mantıksal değer olmalıdır")
	}
	return string(data), true, nil
}
