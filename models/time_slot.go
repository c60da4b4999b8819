package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// TimeSlot adalah satu booked window pada ledger meja.
// Tanggal disimpan sebagai YYYY-MM-DD, jam sebagai HH:MM.
type TimeSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TimeSlotList disimpan sebagai kolom JSON di tabel tables.
type TimeSlotList []TimeSlot

func (l TimeSlotList) Value() (driver.Value, error) {
	if l == nil {
		l = TimeSlotList{}
	}
	return json.Marshal(l)
}

func (l *TimeSlotList) Scan(value interface{}) error {
	if value == nil {
		*l = TimeSlotList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for TimeSlotList")
	}

	if len(raw) == 0 {
		*l = TimeSlotList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// Contains memeriksa apakah window identik sudah ada di ledger
func (l TimeSlotList) Contains(slot TimeSlot) bool {
	for _, s := range l {
		if s == slot {
			return true
		}
	}
	return false
}
