package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/achilleasa/go-mctrace/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the host resources available to cpu tracers.
func ListDevices(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	host := tracer.ProbeHost()
	writeHostTable(&buf, host)

	logger.Noticef("system provides %d logical core(s):\n%s", host.LogicalCores, buf.String())
	return nil
}

// Render host information as a table.
func writeHostTable(w io.Writer, host tracer.HostInfo) {
	model := host.CPUModel
	if model == "" {
		model = "unknown"
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Device", "Property", "Value"})
	table.Append([]string{"CPU", "Name", model})
	table.Append([]string{"CPU", "Logical cores", fmt.Sprintf("%d", host.LogicalCores)})
	table.Append([]string{"CPU", "Clock", fmt.Sprintf("%3.2f GHz", host.ClockGHz)})
	table.Append([]string{"CPU", "Speed", fmt.Sprintf("%3.1f", host.SpeedEstimate())})
	table.Append([]string{"Memory", "Total", fmt.Sprintf("%d MB", host.TotalMemory>>20)})
	table.Append([]string{"Memory", "Free", fmt.Sprintf("%d MB", host.FreeMemory>>20)})
	table.Render()
}
