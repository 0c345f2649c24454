// Command filterinfo prints response properties of the band filter designs.
//
// Usage:
//
//	filterinfo [flags] [family ...]
//
// Without arguments it prints info for all families.
//
// Examples:
//
//	filterinfo butterworth
//	filterinfo -order 6 -freq 2000 chebyshev1 elliptic
//	filterinfo -band bandpass -freq 500 -freq2 2000 -order 3
//	filterinfo -sos -order 5 bessel
//	filterinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filter/dsp/filter/design/pass"
	"github.com/cwbudde/algo-filter/dsp/filter/tf"
)

var families = []pass.Family{
	pass.Butterworth,
	pass.Chebyshev1,
	pass.Chebyshev2,
	pass.Elliptic,
	pass.Bessel,
}

var bands = []pass.Band{
	pass.LowpassBand,
	pass.HighpassBand,
	pass.BandpassBand,
	pass.BandstopBand,
}

// groupDelayBins is the analysis length for the group delay column.
const groupDelayBins = 4096

type options struct {
	band       pass.Band
	order      int
	rate       float64
	freq       float64
	freq2      float64
	rippleDB   float64
	stopbandDB float64
	sos        bool
}

func main() {
	bandName := flag.String("band", "lowpass", "band type: lowpass, highpass, bandpass, bandstop")
	order := flag.Int("order", 4, "prototype order")
	rate := flag.Float64("rate", 48000, "sampling rate in Hz")
	freq := flag.Float64("freq", 1000, "cutoff or lower band edge in Hz")
	freq2 := flag.Float64("freq2", 4000, "upper band edge in Hz (bandpass, bandstop)")
	ripple := flag.Float64("ripple", pass.DefaultRippleDB, "passband ripple in dB (chebyshev1, elliptic)")
	stopband := flag.Float64("stopband", pass.DefaultStopbandDB, "stopband attenuation in dB (chebyshev2, elliptic)")
	all := flag.Bool("all", false, "show all families")
	list := flag.Bool("list", false, "list available family and band names")
	sos := flag.Bool("sos", false, "print the second-order sections of each design")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [family ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints response properties of IIR band filter designs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo butterworth bessel\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -order 6 -freq 2000 elliptic\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -band bandpass -freq 500 -freq2 2000\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	band, ok := parseBand(*bandName)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown band %q (use -list to see available)\n", *bandName)
		os.Exit(2)
	}

	names := flag.Args()
	if *all {
		names = nil
	}

	selected := resolveFamilies(names)
	if len(selected) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filter families\n")
		os.Exit(1)
	}

	opts := options{
		band:       band,
		order:      *order,
		rate:       *rate,
		freq:       *freq,
		freq2:      *freq2,
		rippleDB:   *ripple,
		stopbandDB: *stopband,
		sos:        *sos,
	}

	if err := printAnalysis(os.Stdout, selected, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	fmt.Fprintln(w, "families:")
	for _, f := range families {
		fmt.Fprintf(w, "  %s\n", f)
	}

	fmt.Fprintln(w, "bands:")
	for _, b := range bands {
		fmt.Fprintf(w, "  %s\n", b)
	}
}

func parseBand(name string) (pass.Band, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range bands {
		if b.String() == name {
			return b, true
		}
	}

	return 0, false
}

// resolveFamilies maps names to families, warning about unknown ones. No
// names selects every family.
func resolveFamilies(names []string) []pass.Family {
	if len(names) == 0 {
		return slices.Clone(families)
	}

	var result []pass.Family

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		i := slices.IndexFunc(families, func(f pass.Family) bool { return f.String() == name })
		if i < 0 {
			fmt.Fprintf(os.Stderr, "warning: unknown family %q (use -list to see available)\n", name)
			continue
		}

		result = append(result, families[i])
	}

	return result
}

// row holds the analysis of one design.
type row struct {
	spec     pass.Spec
	h        *tf.TransferFunction
	sections int
	stable   bool
	refDB    float64
	edgeDB   float64
	maxGD    float64
}

func analyze(spec pass.Spec) (row, error) {
	h, err := pass.Design(spec)
	if err != nil {
		return row{}, err
	}

	sos, err := h.ToSOS()
	if err != nil {
		return row{}, err
	}

	stable, err := h.IsStable()
	if err != nil {
		return row{}, err
	}

	gd, err := h.GroupDelay(groupDelayBins)
	if err != nil {
		return row{}, err
	}

	r := row{
		spec:     spec,
		h:        h,
		sections: len(sos),
		stable:   stable,
		refDB:    h.MagnitudeDB(spec.Reference()),
		edgeDB:   h.MagnitudeDB(2 * math.Pi * spec.Freq),
		maxGD:    slices.Max(gd),
	}

	return r, nil
}

func printAnalysis(w io.Writer, selected []pass.Family, o options) error {
	if o.rate <= 0 {
		return fmt.Errorf("sampling rate must be > 0: %g", o.rate)
	}

	var rows []row

	for _, fam := range selected {
		spec := pass.Spec{
			Family:     fam,
			Band:       o.band,
			Order:      o.order,
			Freq:       o.freq / o.rate,
			Freq2:      o.freq2 / o.rate,
			RippleDB:   o.rippleDB,
			StopbandDB: o.stopbandDB,
		}

		r, err := analyze(spec)
		if err != nil {
			return fmt.Errorf("%s: %w", fam, err)
		}

		rows = append(rows, r)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Family\tBand\tOrder\tSections\tStable\tRef Gain [dB]\tEdge [dB]\tMax GD [samples]\n")
	fmt.Fprintf(tw, "------\t----\t-----\t--------\t------\t-------------\t---------\t----------------\n")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%t\t%.3f\t%.3f\t%.2f\n",
			r.spec.Family,
			r.spec.Band,
			r.h.Order(),
			r.sections,
			r.stable,
			r.refDB,
			r.edgeDB,
			r.maxGD,
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if !o.sos {
		return nil
	}

	for _, r := range rows {
		if err := printSections(w, r); err != nil {
			return err
		}
	}

	return nil
}

func printSections(w io.Writer, r row) error {
	coeffs, err := pass.Cascade(r.h)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s %s sections:\n", r.spec.Family, r.spec.Band)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "#\tb0\tb1\tb2\ta1\ta2\tStable\t\n")

	for i, c := range coeffs {
		fmt.Fprintf(tw, "%d\t%.8f\t%.8f\t%.8f\t%.8f\t%.8f\t%t\t\n", i, c.B0, c.B1, c.B2, c.A1, c.A2, c.IsStable())
	}

	return tw.Flush()
}
