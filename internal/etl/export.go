package etl

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/BartekS5/itemexport/pkg/logger"
	"github.com/BartekS5/itemexport/pkg/models"
)

const dateLayout = "2006-01-02"

// FileName is the CSV name for an export taken on day.
func FileName(day time.Time) string {
	return "items-" + day.Format(dateLayout) + ".csv"
}

// WriteCSV writes rows, preceded by the header, to the CSV directory and
// returns the bare file name. An export from earlier the same day is overwritten.
func (e *Extractor) WriteCSV(rows []models.ResultRow) (string, error) {
	dir := e.Options.CSVDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", NewError(KindWrite, errors.Wrapf(err, "create directory %s", dir))
	}

	filename := FileName(e.now())
	path := filepath.Join(dir, filename)
	warnOverwrite(path)

	if err := writeCSVFile(path, rows, e.Transformer); err != nil {
		return "", NewError(KindWrite, err)
	}
	if _, err := os.Stat(path); err != nil {
		return "", NewError(KindWrite, errors.Wrapf(err, "%s not found after write", path))
	}

	logger.Infof("File created: %s (%d rows)", path, len(rows))
	return filename, nil
}

func writeCSVFile(path string, rows []models.ResultRow, t *Transformer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	out := bufio.NewWriter(f)
	w := newCRLFRecordWriter(out)
	if err := w.Write(CSVHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, r := range rows {
		if err := w.Write(t.ToRecord(r)); err != nil {
			return errors.Wrapf(err, "write item %d", r.ItemID)
		}
	}
	return errors.Wrap(out.Flush(), "flush csv")
}

// crlfRecordWriter terminates records with CRLF while leaving CR and LF
// inside quoted fields untouched, which csv.Writer.UseCRLF does not.
type crlfRecordWriter struct {
	out io.Writer
	buf bytes.Buffer
	csv *csv.Writer
}

func newCRLFRecordWriter(out io.Writer) *crlfRecordWriter {
	w := &crlfRecordWriter{out: out}
	w.csv = csv.NewWriter(&w.buf)
	w.csv.Comma = ';'
	return w
}

func (w *crlfRecordWriter) Write(record []string) error {
	w.buf.Reset()
	if err := w.csv.Write(record); err != nil {
		return err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}

	line := w.buf.Bytes()
	line = append(line[:len(line)-1], '\r', '\n')
	_, err := w.out.Write(line)
	return err
}

// Compress gzips the CSV named filename into the gzip directory and returns
// the path of the .gz file.
func (e *Extractor) Compress(filename string) (string, error) {
	src := filepath.Join(e.Options.CSVDir, filename)
	if _, err := os.Stat(src); err != nil {
		return "", NewError(KindCompression, errors.Wrapf(err, "source %s", src))
	}

	dir := e.Options.GzipDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", NewError(KindCompression, errors.Wrapf(err, "create directory %s", dir))
	}

	dst := filepath.Join(dir, filename+".gz")
	warnOverwrite(dst)

	if err := gzipFile(src, dst, filename); err != nil {
		return "", NewError(KindCompression, err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		return "", NewError(KindCompression, errors.Wrapf(err, "%s not found after compression", dst))
	}
	if info.Size() == 0 {
		return "", NewError(KindCompression, errors.Errorf("%s is empty", dst))
	}

	logger.Infof("File compressed: %s (%d bytes)", dst, info.Size())
	return dst, nil
}

func gzipFile(src, dst, name string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "create %s", dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", dst)
		}
	}()

	gz := gzip.NewWriter(out)
	gz.Name = name
	if info, serr := in.Stat(); serr == nil {
		gz.ModTime = info.ModTime()
	}

	if _, err := io.Copy(gz, in); err != nil {
		return errors.Wrapf(err, "compress %s", src)
	}
	return errors.Wrapf(gz.Close(), "finish %s", dst)
}

func warnOverwrite(path string) {
	if _, err := os.Stat(path); err == nil {
		logger.Warnf("%s already exists and will be overwritten", path)
	}
}
