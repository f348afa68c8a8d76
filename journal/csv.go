package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"id", "instance_id", "symbol", "bar_time", "signals", "signal_bits",
		"lots", "entry_price", "broker_stop", "internal_stop", "broker_take",
		"internal_take", "reason",
	}); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) Record(d Decision) error {
	err := j.w.Write([]string{
		d.ID,
		strconv.Itoa(d.InstanceID),
		d.Symbol,
		d.BarTime.Format(time.RFC3339),
		d.Signals,
		strconv.FormatUint(uint64(d.SignalBits), 10),
		f(d.Lots),
		f(d.EntryPrice),
		f(d.BrokerStop),
		f(d.InternalStop),
		f(d.BrokerTake),
		f(d.InternalTake),
		d.Reason,
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
