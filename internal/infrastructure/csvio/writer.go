package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tuncanbit/txe/internal/domain"
)

// WriteSnapshot serializes the account snapshot as CSV. Amounts carry
// exactly four fractional digits. Row order follows the input slice; the
// order is not semantically significant.
func WriteSnapshot(w io.Writer, records []domain.AccountRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for _, record := range records {
		row := []string{
			strconv.FormatUint(uint64(record.Client), 10),
			record.Available.String(),
			record.Held.String(),
			record.Total.String(),
			strconv.FormatBool(record.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
