package etl

import (
	"strconv"
	"strings"
	"time"

	"github.com/BartekS5/itemexport/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// localPrefix marks customers whose items originate locally.
const localPrefix = "99"

// CSVHeader is the first record of every export.
var CSVHeader = []string{"ItemId", "ItemDocumentNbr", "CustomerName", "CreateDate", "UpdateDate", "ItemSource"}

type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// ItemSource derives the classification from the customer name prefix.
func (t *Transformer) ItemSource(customerName string) string {
	if strings.HasPrefix(customerName, localPrefix) {
		return models.SourceLocal
	}
	return models.SourceExternal
}

// Classify fills ItemSource on every row in place.
func (t *Transformer) Classify(rows []models.ResultRow) {
	for i := range rows {
		rows[i].ItemSource = t.ItemSource(rows[i].CustomerName)
	}
}

func (t *Transformer) ToRecord(r models.ResultRow) []string {
	return []string{
		strconv.FormatInt(r.ItemID, 10),
		r.ItemDocumentNbr,
		r.CustomerName,
		r.CreateDate.String(),
		r.UpdateDate.String(),
		r.ItemSource,
	}
}

// ToDocument shapes a row for the MongoDB items collection, keyed by ItemId.
func (t *Transformer) ToDocument(r models.ResultRow, exportDate string) bson.M {
	return bson.M{
		"_id":             r.ItemID,
		"itemDocumentNbr": r.ItemDocumentNbr,
		"customerName":    r.CustomerName,
		"createDate":      r.CreateDate.Time,
		"updateDate":      r.UpdateDate.Time,
		"itemSource":      r.ItemSource,
		"exportDate":      exportDate,
	}
}

// RunDocument records a finished export in the runs collection.
func (t *Transformer) RunDocument(result *Result, finishedAt time.Time) bson.M {
	return bson.M{
		"date":       result.Date,
		"csvFile":    result.CSVPath,
		"gzipFile":   result.GzipPath,
		"rows":       result.Rows,
		"finishedAt": finishedAt,
	}
}
