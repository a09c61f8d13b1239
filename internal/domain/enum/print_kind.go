package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PrintKind represents the type of document sent to the printer
type PrintKind int

const (
	PrintKindReceipt          PrintKind = 0
	PrintKindBnplConfirmation PrintKind = 1
)

func (k PrintKind) String() string {
	names := [...]string{"receipt", "bnpl_confirmation"}
	if int(k) < 0 || int(k) >= len(names) {
		return "receipt"
	}
	return names[k]
}

func (k PrintKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PrintKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = PrintKind(i)
		return nil
	}
	switch str {
	case "receipt":
		*k = PrintKindReceipt
	case "bnpl_confirmation":
		*k = PrintKindBnplConfirmation
	}
	return nil
}

func (k PrintKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *PrintKind) Scan(value interface{}) error {
	if value == nil {
		*k = PrintKindReceipt
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = PrintKind(v)
	case int:
		*k = PrintKind(v)
	}
	return nil
}
