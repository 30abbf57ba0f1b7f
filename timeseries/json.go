package timeseries

import (
	"encoding/json"

	"github.com/etnz/lifesim/date"
)

// jseries is the json representation of a TimeSeries.
type jseries struct {
	Start   date.Date `json:"start"`
	End     date.Date `json:"end"`
	Samples []float64 `json:"samples"`
}

// MarshalJSON encodes the series as a {"start", "end", "samples"} object, and
// the zero TimeSeries as null.
func (ts TimeSeries) MarshalJSON() ([]byte, error) {
	if len(ts.samples) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(jseries{Start: ts.start, End: ts.end, Samples: ts.samples})
}

// UnmarshalJSON decodes a {"start", "end", "samples"} object, and validates it like New does.
// null leaves the series unchanged.
func (ts *TimeSeries) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var js jseries
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	v, err := New(js.Start, js.End, js.Samples)
	if err != nil {
		return err
	}
	*ts = v
	return nil
}

// check that a TimeSeries is a valid json marshall/unmarshaller type.
var _ json.Marshaler = TimeSeries{}
var _ json.Unmarshaler = (*TimeSeries)(nil)
