package networth

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mverhoef/folio/internal/models"
	"github.com/mverhoef/folio/internal/valuation"
)

// RenderTimelineChart renders a PNG line chart from processed net worth
// records. Two series: total net worth (blue solid) and the crypto slice
// (amber dashed). Returns raw PNG bytes.
func RenderTimelineChart(records []models.ProcessedNetWorthRecord) ([]byte, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(records))
	}

	xValues := make([]time.Time, len(records))
	totalY := make([]float64, len(records))
	cryptoY := make([]float64, len(records))

	for i, r := range records {
		d, err := valuation.ParseFlexibleDate(r.Date)
		if err != nil {
			return nil, err
		}
		xValues[i] = d.Value
		totalY[i] = r.NetWorth
		cryptoY[i] = r.Crypto
	}

	totalSeries := chart.TimeSeries{
		Name: "Net Worth",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: totalY,
	}

	cryptoSeries := chart.TimeSeries{
		Name: "Crypto",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("f59e0b"), // amber-500
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: cryptoY,
	}

	graph := chart.Chart{
		Title:  "Net Worth",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			totalSeries,
			cryptoSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
