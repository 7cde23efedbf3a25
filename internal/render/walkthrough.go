package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"StockStress/internal/indicator"
	"StockStress/internal/model"
	"StockStress/internal/strategy"
)

// Walkthrough prints the RSI pipeline stage by stage: deltas,
// gain/loss split, smoothed averages, RS, RSI, and finally the signal
// interpretation. When Interactive is set it pauses for a keystroke
// between stages.
type Walkthrough struct {
	Out         io.Writer
	In          io.Reader
	Interactive bool
}

// NewWalkthrough creates a walkthrough writing to out, pacing on in
// when interactive.
func NewWalkthrough(out io.Writer, in io.Reader, interactive bool) *Walkthrough {
	return &Walkthrough{Out: out, In: in, Interactive: interactive}
}

func (w *Walkthrough) pause() {
	if !w.Interactive {
		return
	}
	fmt.Fprint(w.Out, "\nPress ENTER to continue...")
	bufio.NewReader(w.In).ReadString('\n')
	fmt.Fprintln(w.Out, "--------------------------------------------------")
}

// Run executes the full pipeline over the fetched series, printing a
// snapshot after each stage, and returns the resulting signal.
func (w *Walkthrough) Run(series *model.PriceSeries, period int) (model.Signal, error) {
	fmt.Fprintf(w.Out, "== %s: %d price points fetched ==\n", series.Symbol, series.Len())
	times := make([]time.Time, series.Len())
	for i, p := range series.Points {
		times[i] = p.Time
	}
	closes := series.Closes()
	tt, tc := tail(times, closes, 5)
	fmt.Fprint(w.Out, Table([]string{"Date", "Close"}, tt, tc))
	w.pause()

	if err := series.Validate(); err != nil {
		return model.Signal{}, fmt.Errorf("%w: %v", indicator.ErrInvalidParameter, err)
	}

	fmt.Fprintln(w.Out, "\n[Step 1] Daily moves: close[t] - close[t-1]")
	deltas, err := indicator.Deltas(closes)
	if err != nil {
		return model.Signal{}, err
	}
	deltaTimes := times[1:]
	tt, td := tail(deltaTimes, deltas, 3)
	fmt.Fprint(w.Out, Table([]string{"Date", "Delta"}, tt, td))
	w.pause()

	fmt.Fprintf(w.Out, "\n[Step 2] Split into gains and losses, smooth both over %d observations (EWMA)\n", period)
	gains, losses := indicator.SplitGainLoss(deltas)
	for i, l := range losses {
		losses[i] = math.Abs(l)
	}
	avgGain, err := indicator.SmoothEWMA(gains, period)
	if err != nil {
		return model.Signal{}, err
	}
	avgLoss, err := indicator.SmoothEWMA(losses, period)
	if err != nil {
		return model.Signal{}, err
	}
	avgGain, avgLoss = indicator.AlignDefined(avgGain, avgLoss)
	tt, tg := tail(deltaTimes, avgGain, 3)
	_, tl := tail(deltaTimes, avgLoss, 3)
	fmt.Fprint(w.Out, Table([]string{"Date", "AvgGain", "AvgLoss"}, tt, tg, tl))
	w.pause()

	fmt.Fprintln(w.Out, "\n[Step 3] Relative strength: RS = AvgGain / AvgLoss (RS = 100 when AvgLoss is 0)")
	rs := indicator.RelativeStrength(avgGain, avgLoss)
	tt, tr := tail(deltaTimes, rs, 3)
	fmt.Fprint(w.Out, Table([]string{"Date", "RS"}, tt, tr))
	w.pause()

	fmt.Fprintln(w.Out, "\n[Step 4] Final score: RSI = 100 - 100/(1+RS)")
	table, err := indicator.Analyze(series, period)
	if err != nil {
		return model.Signal{}, err
	}
	tp := table.Tail(3)
	tpTimes := make([]time.Time, len(tp))
	tpCloses := make([]float64, len(tp))
	tpRSI := make([]float64, len(tp))
	for i, p := range tp {
		tpTimes[i], tpCloses[i], tpRSI[i] = p.Time, p.Close, p.RSI
	}
	fmt.Fprint(w.Out, Table([]string{"Date", "Close", "RSI"}, tpTimes, tpCloses, tpRSI))
	w.pause()

	signal := strategy.Classify(table.LastRSI())
	fmt.Fprintf(w.Out, "\n[Step 5] Interpretation\n")
	if math.IsNaN(signal.LastRSI) {
		fmt.Fprintf(w.Out, "%s RSI: undefined\n", series.Symbol)
	} else {
		fmt.Fprintf(w.Out, "%s RSI: %.2f\n", series.Symbol, signal.LastRSI)
	}
	fmt.Fprintf(w.Out, "Signal: %s\n%s\n", signal.Band, signal.Explanation)
	return signal, nil
}
