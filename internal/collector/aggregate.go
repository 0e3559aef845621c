package collector

import (
	"time"

	"ChartSentry/internal/model"
)

// AggregateToFourHour rolls chronologically ordered hourly bars into 4-hour
// bars. Bars are bucketed by truncating the timestamp to a 4-hour boundary:
// open is the first bar's open, high/low the extremes, close the last bar's
// close, volume the sum. Partial buckets at either end are kept.
func AggregateToFourHour(hourly []model.OHLCV) []model.OHLCV {
	if len(hourly) == 0 {
		return nil
	}
	var out []model.OHLCV
	var bucket model.OHLCV
	var bucketStart time.Time
	started := false

	for _, b := range hourly {
		start := b.Time.Truncate(4 * time.Hour)
		if !started || !start.Equal(bucketStart) {
			if started {
				out = append(out, bucket)
			}
			bucket = model.OHLCV{Time: start, Open: b.Open, High: b.High, Low: b.Low, Close: b.Close, Volume: b.Volume}
			bucketStart = start
			started = true
			continue
		}
		if b.High > bucket.High {
			bucket.High = b.High
		}
		if b.Low < bucket.Low {
			bucket.Low = b.Low
		}
		bucket.Close = b.Close
		bucket.Volume += b.Volume
	}
	out = append(out, bucket)
	return out
}
