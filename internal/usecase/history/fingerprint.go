package history

import (
	"fmt"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/history"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/util"
)

// Fingerprint derives the deterministic cache key (the `request_id` handle)
// for a historical query. Identical parameters always produce the same key,
// so losing a handle only costs a re-fetch, never correctness.
//
// 1-second data queried within a session is keyed per user and per day; every
// other query shares one key across users. The display timezone is part of
// the key because the fake-UTC encoding bakes it into the cached candles.
func Fingerprint(params history.FetchParams) string {
	if params.Interval == "1s" && params.SessionToken != "" {
		return fmt.Sprintf("user:%s:ohlc:%s:%s:1s:%s:%s",
			params.SessionToken,
			params.Exchange,
			params.Symbol,
			util.SessionDate(params.Start),
			params.Timezone,
		)
	}

	return fmt.Sprintf("ohlc:%s:%s:%s:%s_%s:%s",
		params.Exchange,
		params.Symbol,
		params.Interval,
		params.Start.UTC().Format(time.RFC3339),
		params.End.UTC().Format(time.RFC3339),
		params.Timezone,
	)
}
