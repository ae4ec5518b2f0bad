package models

import (
	"time"

	"github.com/BartekS5/itemexport/pkg/utils"
)

const (
	SourceLocal    = "Local"
	SourceExternal = "External"
)

// TimestampLayout is how datetimes are rendered in the CSV export. The
// fraction (SQL Server datetime keeps milliseconds) is only printed when set.
const TimestampLayout = "2006-01-02 15:04:05.999"

// ResultRow is one line of the extraction query plus the derived ItemSource.
type ResultRow struct {
	ItemID          int64     `db:"ItemId"`
	ItemDocumentNbr string    `db:"ItemDocumentNbr"`
	CustomerName    string    `db:"CustomerName"`
	CreateDate      Timestamp `db:"CreateDate"`
	UpdateDate      Timestamp `db:"UpdateDate"`
	ItemSource      string    `db:"-"`
}

// Timestamp scans whatever datetime shape the driver returns.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (ts *Timestamp) Scan(src interface{}) error {
	t, err := utils.ConvertDateTime(src)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}

func (ts Timestamp) String() string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(TimestampLayout)
}
