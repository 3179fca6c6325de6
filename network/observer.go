package network

import (
	"github.com/sarchlab/netsim/datarecording"
	"github.com/sarchlab/netsim/sim"
	"github.com/sarchlab/netsim/topology"
)

// A TransferSample describes one completed transfer.
type TransferSample struct {
	Src   topology.DeviceID
	Dest  topology.DeviceID
	Tag   int
	Bytes float64
	Hops  int
	Start sim.VTimeInSec
	End   sim.VTimeInSec
}

// A TransferObserver is notified when a transfer completes.
type TransferObserver interface {
	RecordTransfer(s TransferSample)
}

// transferTableName is the table that the DB observer writes into.
const transferTableName = "transfers"

// transferRow is the flat shape of a TransferSample in the database.
type transferRow struct {
	Src   int
	Dest  int
	Tag   int
	Bytes float64
	Hops  int
	Start float64
	End   float64
}

// DBObserver records completed transfers into a data recorder, one row per
// transfer.
type DBObserver struct {
	recorder datarecording.DataRecorder
}

// NewDBObserver creates a DBObserver and registers its table with the
// recorder.
func NewDBObserver(recorder datarecording.DataRecorder) *DBObserver {
	o := &DBObserver{recorder: recorder}
	recorder.CreateTable(transferTableName, transferRow{})
	return o
}

// RecordTransfer inserts one row for the completed transfer.
func (o *DBObserver) RecordTransfer(s TransferSample) {
	o.recorder.InsertData(transferTableName, transferRow{
		Src:   int(s.Src),
		Dest:  int(s.Dest),
		Tag:   s.Tag,
		Bytes: s.Bytes,
		Hops:  s.Hops,
		Start: float64(s.Start),
		End:   float64(s.End),
	})
}
