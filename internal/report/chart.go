package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/flowcast-dev/flowcast/internal/sim"
)

// RenderBufferChart renders a PNG line chart of the buffer account's balance
// over the simulated range.
func RenderBufferChart(res *sim.Results, bufferColumn string) ([]byte, error) {
	series, err := timeSeries(res, bufferColumn)
	if err != nil {
		return nil, err
	}
	series.Style = chart.Style{
		StrokeColor: drawing.ColorFromHex("2563eb"),
		StrokeWidth: 2.5,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Balance Over Time", bufferColumn),
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
			ValueFormatter: dollarFormatter,
		},
		Series: []chart.Series{series},
	}

	return renderPNG(graph)
}

// RenderLoanChart renders loan balances plus the reserve balance as one
// series each.
func RenderLoanChart(res *sim.Results, loanColumns []string, reserveColumn string) ([]byte, error) {
	columns := append(append([]string{}, loanColumns...), reserveColumn)
	series := make([]chart.Series, 0, len(columns))
	for _, col := range columns {
		s, err := timeSeries(res, col)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}

	graph := chart.Chart{
		Title:  "Loan and Reserve Balances",
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
			ValueFormatter: dollarFormatter,
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	return renderPNG(graph)
}

func timeSeries(res *sim.Results, column string) (chart.TimeSeries, error) {
	if res.Len() < 2 {
		return chart.TimeSeries{}, fmt.Errorf("need at least 2 data points, got %d", res.Len())
	}
	values, ok := res.Column(column)
	if !ok {
		return chart.TimeSeries{}, fmt.Errorf("no column %q in results", column)
	}

	yValues := make([]float64, len(values))
	for i, v := range values {
		yValues[i], _ = v.Float64()
	}
	return chart.TimeSeries{
		Name:    column,
		XValues: res.Dates,
		YValues: yValues,
	}, nil
}

func dollarFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("$%.0f", f)
	}
	return ""
}

func renderPNG(graph chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
