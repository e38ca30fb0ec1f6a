// Package autoarima chooses the order of a non-seasonal ARIMA model.
//
// The differencing order comes from stats.NDiffs. AR and MA orders are
// chosen by minimizing an information criterion, either with the stepwise
// Hyndman-Khandakar search (the default, starting from (StartP, StartQ),
// (0, 0), (1, 0) and (0, 1)) or with a full grid search over
// [0, MaxP] x [0, MaxQ] that fits candidates concurrently.
//
//	cfg := autoarima.DefaultConfig()
//	res, err := autoarima.AutoARIMA(series, cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Order) // e.g. ARIMA(1,1,0)
//
// With Trace set, every candidate is logged at debug level through
// log/slog. Failing candidates are skipped unless ErrorAction is "raise".
package autoarima
