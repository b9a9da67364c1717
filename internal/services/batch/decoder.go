// Package batch adapts the settlement core to its CSV wire format: a
// decoder for transaction records and an encoder for balance snapshots.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/teller/internal/domain"
)

const (
	columnType   = "type"
	columnClient = "client"
	columnTx     = "tx"
	columnAmount = "amount"
)

// RecordError marks one malformed record. The driver drops the record and
// keeps reading; only header and I/O failures end a batch.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record at line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Decoder reads transaction records from CSV input with a
// type,client,tx,amount header. Column order is free, fields are trimmed
// and lifecycle records may omit the amount column.
type Decoder struct {
	r       *csv.Reader
	columns map[string]int
}

// NewDecoder wraps r. The header row is consumed on the first Next call.
func NewDecoder(r io.Reader) *Decoder {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &Decoder{r: cr}
}

// Next returns the next well-formed transaction. It returns *RecordError
// for records that must be dropped and io.EOF at end of input.
func (d *Decoder) Next() (domain.Transaction, error) {
	if d.columns == nil {
		if err := d.readHeader(); err != nil {
			return domain.Transaction{}, err
		}
	}

	record, err := d.r.Read()
	if err == io.EOF {
		return domain.Transaction{}, io.EOF
	}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return domain.Transaction{}, &RecordError{Line: parseErr.Line, Err: err}
	}
	if err != nil {
		return domain.Transaction{}, err
	}

	line, _ := d.r.FieldPos(0)
	tx, err := d.decodeRecord(record)
	if err != nil {
		return domain.Transaction{}, &RecordError{Line: line, Err: err}
	}
	return tx, nil
}

func (d *Decoder) readHeader() error {
	record, err := d.r.Read()
	if err != nil {
		return err
	}

	columns := make(map[string]int, len(record))
	for i, name := range record {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnType, columnClient, columnTx} {
		if _, ok := columns[required]; !ok {
			return errors.Errorf("input header is missing column %q", required)
		}
	}

	d.columns = columns
	return nil
}

func (d *Decoder) decodeRecord(record []string) (domain.Transaction, error) {
	kindField, _ := d.field(record, columnType)
	kind, err := domain.ParseTransactionKind(kindField)
	if err != nil {
		return domain.Transaction{}, err
	}

	clientField, _ := d.field(record, columnClient)
	client, err := strconv.ParseUint(clientField, 10, 16)
	if err != nil {
		return domain.Transaction{}, errors.Wrapf(err, "bad client id %q", clientField)
	}

	txField, _ := d.field(record, columnTx)
	txID, err := strconv.ParseUint(txField, 10, 32)
	if err != nil {
		return domain.Transaction{}, errors.Wrapf(err, "bad transaction id %q", txField)
	}

	tx := domain.Transaction{
		Kind:   kind,
		Client: domain.ClientID(client),
		ID:     domain.TransactionID(txID),
	}

	if kind.HasAmount() {
		amountField, ok := d.field(record, columnAmount)
		if !ok || amountField == "" {
			return domain.Transaction{}, errors.Errorf("%s record without amount", kind)
		}
		amount, err := domain.ParseAmount(amountField)
		if err != nil {
			return domain.Transaction{}, errors.Wrapf(err, "bad amount %q", amountField)
		}
		tx.Amount = amount
	}

	return tx, nil
}

// field returns the trimmed value of the named column, reporting whether
// the record is long enough to contain it.
func (d *Decoder) field(record []string, name string) (string, bool) {
	idx, ok := d.columns[name]
	if !ok || idx >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[idx]), true
}
