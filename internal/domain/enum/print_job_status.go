package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PrintJobStatus represents where a print job is in its lifecycle
type PrintJobStatus int

const (
	PrintJobStatusScheduled PrintJobStatus = 0
	PrintJobStatusPrinted   PrintJobStatus = 1
	PrintJobStatusFailed    PrintJobStatus = 2
)

func (s PrintJobStatus) String() string {
	names := [...]string{"Scheduled", "Printed", "Failed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Scheduled"
	}
	return names[s]
}

func (s PrintJobStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PrintJobStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PrintJobStatus(i)
		return nil
	}
	switch str {
	case "Scheduled":
		*s = PrintJobStatusScheduled
	case "Printed":
		*s = PrintJobStatusPrinted
	case "Failed":
		*s = PrintJobStatusFailed
	}
	return nil
}

func (s PrintJobStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PrintJobStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PrintJobStatusScheduled
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PrintJobStatus(v)
	case int:
		*s = PrintJobStatus(v)
	}
	return nil
}
