package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/katalvlaran/gaussjordan/internal/logging"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/samples"
	"gonum.org/v1/gonum/mat"
)

// Section titles, in output order.
const (
	sectionEchelon = "ECHELON REDUCTION"
	sectionSamples = "TEST MATRICES"
	sectionRandom  = "RANDOM MATRICES"
	sectionInverse = "INVERSE"
)

// section renders a banner line.
func section(name string) string {
	return fmt.Sprintf("\t\t---- %s ----\n", name)
}

// render prints m through gonum's formatter.
func render(w io.Writer, m matrix.Matrix) error {
	g, err := matrix.ToGonum(m)
	if err != nil {
		return err
	}

	return printf(w, "%v\n", mat.Formatted(g, mat.Squeeze()))
}

// run executes the walkthrough. Inversion failures of individual matrices are
// reported inline and logged; only I/O and setup errors abort.
func run(w io.Writer, cfg Config, log logging.Logger) error {
	start := time.Now()

	seed := cfg.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Info("starting", "seed", seed, "max_dim", cfg.MaxDim)

	var opts []matrix.Option
	if cfg.Tolerance > 0 {
		opts = append(opts, matrix.WithPivotTolerance(cfg.Tolerance))
	}

	// Echelon reduction of the walkthrough input.
	if err := printf(w, "%s", section(sectionEchelon)); err != nil {
		return err
	}
	ex := samples.EchelonExample()
	if err := matrix.ReduceEchelon(ex, opts...); err != nil {
		return err
	}
	if err := render(w, ex); err != nil {
		return err
	}

	// Every sample matrix and its inverse.
	if err := printf(w, "%s", section(sectionSamples)); err != nil {
		return err
	}
	fixtures, err := samples.Fixtures()
	if err != nil {
		return err
	}
	for i, m := range fixtures {
		if err = printf(w, "Matrix:\n"); err != nil {
			return err
		}
		if err = render(w, m); err != nil {
			return err
		}
		if err = printInverse(w, m, opts, log, "fixture", i); err != nil {
			return err
		}
	}

	// One random square matrix.
	if err = printf(w, "%s", section(sectionRandom)); err != nil {
		return err
	}
	rm, err := samples.RandomSquare(rng, cfg.MaxDim, cfg.Lower, cfg.Upper)
	if err != nil {
		return err
	}
	n := rm.Rows()
	log.Debug("random matrix", "rows", n, "cols", n)
	if err = printf(w, "[+] Testing with a %dx%d random-generated matrix.\n", n, n); err != nil {
		return err
	}
	if err = render(w, rm); err != nil {
		return err
	}

	if err = printf(w, "%s", section(sectionInverse)); err != nil {
		return err
	}
	if err = printInverse(w, rm, opts, log, "random", 0); err != nil {
		return err
	}

	log.Info("program terminated", "elapsed_ms", time.Since(start).Milliseconds())

	return nil
}

// printInverse renders the inverse of m or the reason it has none.
func printInverse(w io.Writer, m matrix.Matrix, opts []matrix.Option, log logging.Logger, kind string, idx int) error {
	inv, err := matrix.Inverse(m, opts...)
	if err != nil {
		log.Warn("inversion failed", "kind", kind, "index", idx, "err", err)

		return printf(w, "Inverse: %v\n", err)
	}
	if err = printf(w, "Inverse:\n"); err != nil {
		return err
	}

	return render(w, inv)
}

// printf is fmt.Fprintf with the byte count dropped.
func printf(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)

	return err
}
