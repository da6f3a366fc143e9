package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"inflation-lens/internal/analysis"
	"inflation-lens/internal/config"
	"inflation-lens/internal/format"
	"inflation-lens/internal/growth"
	"inflation-lens/internal/model"
	"inflation-lens/internal/report"
	"inflation-lens/internal/sampler"
	"inflation-lens/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		cmdGenerate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "distribution":
		cmdDistribution(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	case "tables":
		cmdTables(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli generate --asset fd --inflation cpi-combined --range 5Y --out results/fd_5y.csv")
	fmt.Println("  cli compare --inflation lifestyle-metro --range 10Y --seed 7")
	fmt.Println("  cli distribution --asset nifty50 --range MAX --trials 1000")
	fmt.Println("  cli report --asset gold --range 10Y --out results/gold.pdf")
	fmt.Println("  cli tables --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - every command accepts --config (YAML) to override the calibration")
	fmt.Println("  - --seed 0 draws a fresh path each run; any other value is reproducible")
}

// selectionFlags are shared by the commands that generate a series.
type selectionFlags struct {
	asset, inflation, rng *string
	seed                  *int64
	cfgPath               *string
}

func addSelectionFlags(fs *flag.FlagSet, withAsset bool) selectionFlags {
	f := selectionFlags{
		inflation: fs.String("inflation", string(model.InflationCPICombined), "Inflation index ID or name"),
		rng:       fs.String("range", string(model.Range5Y), "Time range: 1Y, 3Y, 5Y, 10Y, MAX"),
		seed:      fs.Int64("seed", 0, "Random seed (0 = time-seeded)"),
		cfgPath:   fs.String("config", "", "Optional path to YAML config"),
	}
	if withAsset {
		f.asset = fs.String("asset", string(model.AssetNifty50), "Asset ID or name")
	}
	return f
}

func (f selectionFlags) selection() (model.AssetType, model.InflationType, model.TimeRange) {
	var a model.AssetType
	if f.asset != nil {
		a = model.ParseAsset(*f.asset)
	}
	return a, model.ParseInflation(*f.inflation), model.ParseTimeRange(*f.rng)
}

func (f selectionFlags) generator() (*simulate.Generator, *config.Config) {
	cfg := config.Default()
	if *f.cfgPath != "" {
		loaded, err := config.Load(*f.cfgPath)
		must(err)
		cfg = loaded
	}
	table, err := cfg.Table()
	must(err)

	var s sampler.Sampler = sampler.NewRandom()
	if *f.seed != 0 {
		s = sampler.NewSeeded(*f.seed)
	}
	return simulate.New(table, s, simulate.WithOptions(cfg.Options())), cfg
}

func warnUnknown(a model.AssetType, i model.InflationType, r model.TimeRange, table map[model.TimeRange]int) {
	if a != "" && !a.Known() {
		fmt.Fprintf(os.Stderr, "warning: unknown asset %q, using the fixed-deposit calibration\n", a)
	}
	if !i.Known() {
		fmt.Fprintf(os.Stderr, "warning: unknown inflation index %q, using CPI (Combined)\n", i)
	}
	if _, ok := table[r]; !ok {
		fmt.Fprintf(os.Stderr, "warning: unknown range %q, using 60 months\n", r)
	}
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	sel := addSelectionFlags(fs, true)
	outPath := fs.String("out", "", "Optional: write the series as CSV")
	asJSON := fs.Bool("json", false, "Print the full chart as JSON")
	_ = fs.Parse(args)

	gen, _ := sel.generator()
	a, i, r := sel.selection()
	warnUnknown(a, i, r, gen.Table().Months)

	data, err := gen.Generate(a, i, r)
	must(err)

	if *outPath != "" {
		must(simulate.WriteSeriesCSVFile(*outPath, data))
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", len(data.Series), *outPath)
	}
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		must(enc.Encode(data))
		return
	}
	printSummary(a, i, r, data)
}

func printSummary(a model.AssetType, i model.InflationType, r model.TimeRange, data *model.ChartData) {
	s := format.Summary(data)
	first := data.Series[0]
	last := data.Last()

	fmt.Printf("%s vs %s, %s (%s to %s)\n", a.DisplayName(), i.DisplayName(), r.DisplayName(), first.DateLabel, last.DateLabel)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\tNominal\tReal\n")
	fmt.Fprintf(w, "Final value\t%s\t%s\n", s.FinalNominal, s.FinalReal)
	fmt.Fprintf(w, "Total return\t%s\t%s\n", s.NominalReturn, s.RealReturn)
	fmt.Fprintf(w, "CAGR\t%s\t%s\n", s.CAGRNominal, s.CAGRReal)
	fmt.Fprintf(w, "Index\t%.2f\t\n", last.InflationIndex)
	_ = w.Flush()
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	sel := addSelectionFlags(fs, false)
	_ = fs.Parse(args)

	gen, _ := sel.generator()
	_, i, r := sel.selection()
	warnUnknown("", i, r, gen.Table().Months)

	outcomes, err := analysis.Compare(gen, model.AllAssets, i, r)
	must(err)

	fmt.Printf("Assets vs %s, %s\n", i.DisplayName(), r.DisplayName())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Rank\tAsset\tFinal\tReal\tNominal CAGR\tReal CAGR\tBeat\n")
	for k, o := range outcomes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%v\n", k+1, o.Name,
			format.INR(o.FinalNominal), format.INR(o.FinalReal),
			format.Percent(o.Summary.CAGRNominalPct), format.Percent(o.Summary.CAGRRealPct),
			o.BeatInflation)
	}
	_ = w.Flush()
}

func cmdDistribution(args []string) {
	fs := flag.NewFlagSet("distribution", flag.ExitOnError)
	sel := addSelectionFlags(fs, true)
	trials := fs.Int("trials", 0, "Number of trials (0 = config default)")
	_ = fs.Parse(args)

	gen, cfg := sel.generator()
	a, i, r := sel.selection()
	warnUnknown(a, i, r, gen.Table().Months)

	n := *trials
	if n == 0 {
		n = cfg.Simulation.DefaultTrials
	}
	if n > cfg.Simulation.MaxTrials {
		fmt.Fprintf(os.Stderr, "--trials must be <= %d\n", cfg.Simulation.MaxTrials)
		os.Exit(2)
	}

	started := time.Now()
	d, err := analysis.ComputeDistribution(gen, a, i, r, n)
	must(err)

	fmt.Printf("%s vs %s, %s: %d trials in %s\n", a.DisplayName(), i.DisplayName(), r.DisplayName(), d.Trials, time.Since(started).Round(time.Millisecond))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\tMin\tP05\tMedian\tMean\tP95\tMax\n")
	row := func(name string, s analysis.Stats, f func(float64) string) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", name, f(s.Min), f(s.P05), f(s.Median), f(s.Mean), f(s.P95), f(s.Max))
	}
	row("Nominal CAGR", d.CAGRNominal, format.Percent)
	row("Real CAGR", d.CAGRReal, format.Percent)
	row("Final real", d.FinalReal, format.INR)
	_ = w.Flush()
	fmt.Printf("Beat inflation in %.1f%% of trials\n", d.BeatInflationShare*100)
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	sel := addSelectionFlags(fs, true)
	outPath := fs.String("out", "results/report.pdf", "Output PDF path")
	_ = fs.Parse(args)

	gen, _ := sel.generator()
	a, i, r := sel.selection()
	warnUnknown(a, i, r, gen.Table().Months)

	data, err := gen.Generate(a, i, r)
	must(err)

	must(os.MkdirAll(filepath.Dir(*outPath), 0o755))
	f, err := os.Create(*outPath)
	must(err)
	defer f.Close()

	must(report.Write(f, report.Input{Asset: a, Inflation: i, Range: r, Generated: time.Now(), Data: data}))
	fmt.Printf("Wrote %s\n", *outPath)
	printSummary(a, i, r, data)
}

func cmdTables(args []string) {
	fs := flag.NewFlagSet("tables", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Optional path to YAML config")
	_ = fs.Parse(args)

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		must(err)
		cfg = loaded
	}
	table, err := cfg.Table()
	must(err)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Asset\tID\tRule\tMean\tVolatility\n")
	for _, a := range model.AllAssets {
		p := table.Asset(a)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\t%.1f%%\n", a.DisplayName(), a, growth.For(a).Name, p.AnnualMean*100, p.AnnualVolatility*100)
	}
	fmt.Fprintf(w, "\t\t\t\t\n")
	fmt.Fprintf(w, "Inflation\tID\t\tBase rate\tVolatility\n")
	for _, i := range model.AllInflationTypes {
		p := table.InflationFor(i)
		fmt.Fprintf(w, "%s\t%s\t\t%.1f%%\t%.1f%%\n", i.DisplayName(), i, p.AnnualBaseRate*100, p.AnnualVolatility*100)
	}
	fmt.Fprintf(w, "\t\t\t\t\n")
	fmt.Fprintf(w, "Range\tMonths\t\t\t\n")
	for _, r := range model.AllTimeRanges {
		fmt.Fprintf(w, "%s\t%d\t\t\t\n", r.DisplayName(), table.MonthsFor(r))
	}
	_ = w.Flush()

	o := cfg.Options()
	fmt.Printf("\nStart %s, base index %.0f, monthly inflation floor %.1f%%, salary hike jitter ±%.1f%%\n",
		format.INR(o.InitialNominal), o.BaseIndex, o.InflationFloor*100, o.SalaryHikeJitter*100)
}

func must(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
