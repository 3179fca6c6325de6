package monitoring

import (
	"sync"
	"time"
)

// A ProgressBar tracks one batch of transfers as they move from in flight to
// finished, together with the bytes they carried.
type ProgressBar struct {
	sync.Mutex
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`

	TotalTransfers    uint64  `json:"total_transfers"`
	InFlightTransfers uint64  `json:"in_flight_transfers"`
	FinishedTransfers uint64  `json:"finished_transfers"`
	BytesMoved        float64 `json:"bytes_moved"`
}

// StartTransfers marks a number of transfers as issued and in flight.
func (b *ProgressBar) StartTransfers(count uint64) {
	b.Lock()
	defer b.Unlock()

	b.InFlightTransfers += count
}

// CompleteTransfer moves one in-flight transfer to finished and accounts for
// the bytes it moved.
func (b *ProgressBar) CompleteTransfer(bytes float64) {
	b.Lock()
	defer b.Unlock()

	b.InFlightTransfers--
	b.FinishedTransfers++
	b.BytesMoved += bytes
}

// progressRsp is the wire form of one progress bar, extended with the
// wall-clock transfer rate.
type progressRsp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`

	TotalTransfers    uint64  `json:"total_transfers"`
	InFlightTransfers uint64  `json:"in_flight_transfers"`
	FinishedTransfers uint64  `json:"finished_transfers"`
	BytesMoved        float64 `json:"bytes_moved"`

	// TransferRate is the bytes moved per wall-clock second since the bar
	// started.
	TransferRate float64 `json:"transfer_rate"`
}

// snapshot captures the bar's state for reporting.
func (b *ProgressBar) snapshot() progressRsp {
	b.Lock()
	defer b.Unlock()

	rsp := progressRsp{
		ID:                b.ID,
		Name:              b.Name,
		StartTime:         b.StartTime,
		TotalTransfers:    b.TotalTransfers,
		InFlightTransfers: b.InFlightTransfers,
		FinishedTransfers: b.FinishedTransfers,
		BytesMoved:        b.BytesMoved,
	}

	elapsed := time.Since(b.StartTime).Seconds()
	if elapsed > 0 {
		rsp.TransferRate = b.BytesMoved / elapsed
	}

	return rsp
}
