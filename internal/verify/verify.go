// Package verify checks every conversion kernel against scalar reference
// semantics on the running target.
//
// 16-bit and 8-bit sources are checked over every bit pattern. Wider sources
// are sampled from a seeded generator after a fixed list of edge values, so
// a given Seed always checks the same inputs.
package verify

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-highway-convert/hwy"
	"github.com/ajroetker/go-highway-convert/hwy/contrib/vecconvert"
	"github.com/ajroetker/go-highway-convert/hwy/contrib/workerpool"
)

var (
	// ErrMismatch is returned when a kernel lane differs from its reference.
	ErrMismatch = errors.New("verify: kernel result mismatch")

	// ErrUnknownType is returned when Options.Types names no lane type.
	ErrUnknownType = errors.New("verify: unknown lane type")
)

// DefaultSamples is the number of source groups checked per sampled kernel.
const DefaultSamples = 4096

// batchGroups is how many register groups one pool batch converts.
const batchGroups = 64

// Options controls a verification run.
type Options struct {
	// Samples is the number of random source groups for sampled kernels.
	// Zero means DefaultSamples.
	Samples int
	// Seed makes sampled inputs reproducible.
	Seed int64
	// Workers bounds both the kernels checked at once and the pool size.
	// Zero means GOMAXPROCS.
	Workers int
	// Types keeps only kernels whose source or destination is one of these
	// lane names ("f32", "bf16", "i8", ...). Empty keeps all.
	Types []string
}

// Mismatch is the first differing lane found for a kernel.
type Mismatch struct {
	Lane  int    `json:"lane" yaml:"lane"`
	Input string `json:"input" yaml:"input"`
	Got   string `json:"got" yaml:"got"`
	Want  string `json:"want" yaml:"want"`
}

// KernelReport is the outcome for one kernel.
type KernelReport struct {
	Name       string            `json:"name" yaml:"name"`
	Src        string            `json:"src" yaml:"src"`
	Dst        string            `json:"dst" yaml:"dst"`
	Policy     vecconvert.Policy `json:"policy" yaml:"policy"`
	Exhaustive bool              `json:"exhaustive" yaml:"exhaustive"`
	Checked    int64             `json:"checked" yaml:"checked"`
	Mismatch   *Mismatch         `json:"mismatch,omitempty" yaml:"mismatch,omitempty"`
}

// Report is the outcome of Run.
type Report struct {
	Target   string         `json:"target" yaml:"target"`
	Width    int            `json:"width" yaml:"width"`
	Seed     int64          `json:"seed" yaml:"seed"`
	Samples  int            `json:"samples" yaml:"samples"`
	Duration time.Duration  `json:"duration" yaml:"duration"`
	Kernels  []KernelReport `json:"kernels" yaml:"kernels"`
}

// Failed returns the reports that found a mismatch.
func (r Report) Failed() []KernelReport {
	var failed []KernelReport
	for _, k := range r.Kernels {
		if k.Mismatch != nil {
			failed = append(failed, k)
		}
	}
	return failed
}

// Checked returns the total number of lanes compared.
func (r Report) Checked() int64 {
	var n int64
	for _, k := range r.Kernels {
		n += k.Checked
	}
	return n
}

// Run checks the registered kernels selected by opts.
//
// Every selected kernel runs to completion even when another one fails; the
// returned error joins one ErrMismatch per failing kernel. Cancelling ctx
// stops the run and returns ctx's error.
func Run(ctx context.Context, opts Options) (Report, error) {
	selected, err := selectChecks(allChecks(), opts.Types)
	if err != nil {
		return Report{}, err
	}
	return runChecks(ctx, opts, selected)
}

// Names lists the kernels Run checks, in report order.
func Names() []string {
	checks := allChecks()
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.name()
	}
	return names
}

func selectChecks(checks []checker, types []string) ([]checker, error) {
	if len(types) == 0 {
		return checks, nil
	}
	known := []string{"bf16", "f16", "f32", "i64", "i32", "i8", "u8"}
	for _, t := range types {
		if !slices.Contains(known, t) {
			return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownType, t, known)
		}
	}
	var out []checker
	for _, c := range checks {
		src, dst := c.types()
		if slices.Contains(types, src) || slices.Contains(types, dst) {
			out = append(out, c)
		}
	}
	return out, nil
}

func runChecks(ctx context.Context, opts Options, checks []checker) (Report, error) {
	if opts.Samples <= 0 {
		opts.Samples = DefaultSamples
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	pool := workerpool.New(opts.Workers)
	defer pool.Close()

	policies := make(map[string]vecconvert.Policy)
	for _, k := range vecconvert.Kernels() {
		policies[k.Name] = k.Policy
	}

	start := time.Now()
	reports := make([]KernelReport, len(checks))
	mismatches := make([]error, len(checks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, c := range checks {
		g.Go(func() error {
			rep, err := c.run(gctx, pool, opts)
			rep.Policy = policies[rep.Name]
			reports[i] = rep
			if errors.Is(err, ErrMismatch) {
				mismatches[i] = err
				return nil
			}
			return err
		})
	}
	err := g.Wait()

	report := Report{
		Target:   hwy.CurrentName(),
		Width:    hwy.CurrentWidth(),
		Seed:     opts.Seed,
		Samples:  opts.Samples,
		Duration: time.Since(start),
		Kernels:  reports,
	}
	if err != nil {
		return report, err
	}
	return report, errors.Join(mismatches...)
}
