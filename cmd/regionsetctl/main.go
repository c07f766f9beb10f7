package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/tipech/overlap-graph/region"
)

const RegionSetCtlVersion = "0.0.1"

func main() {
	usage := `Region set control.

Usage:
    regionsetctl gen --dimension=<dimension> --count=<count>
        [--bounds_lower=<lower>] [--bounds_upper=<upper>] <out_file>
    regionsetctl sweep --dimension=<dimension> [--touching]
        <in_file>
    regionsetctl cycle-sweep [--touching] [--region_id=<region_id>]
        <in_file>
    regionsetctl graph [--touching] <in_file>
    regionsetctl enumerate [--touching] [--region_id=<region_id>]
        <in_file>
    regionsetctl -h | --help
    regionsetctl --version

Options:
    -h --help                   Show this screen.
    --version                   Show version.
    --dimension=<dimension>     gen: number of dimensions; sweep: index of the dimension to sweep along [default: 2].
    --count=<count>             Number of regions to generate.
    --bounds_lower=<lower>      Lower bound of the generating domain [default: 0].
    --bounds_upper=<upper>      Upper bound of the generating domain [default: 100].
    --touching                  Treat touching endpoints as overlapping.
    --region_id=<region_id>     Restrict enumeration/cycle-sweep to one region.`

	opts, err := docopt.ParseArgs(usage, os.Args[1:], RegionSetCtlVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	var runErr error
	if gen_, _ := opts.Bool("gen"); gen_ {
		runErr = gen(opts)
	} else if sweep_, _ := opts.Bool("sweep"); sweep_ {
		runErr = sweep(opts)
	} else if cycleSweep_, _ := opts.Bool("cycle-sweep"); cycleSweep_ {
		runErr = cycleSweep(opts)
	} else if graph_, _ := opts.Bool("graph"); graph_ {
		runErr = runGraph(opts)
	} else if enumerate_, _ := opts.Bool("enumerate"); enumerate_ {
		runErr = enumerate(opts)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", runErr)
		os.Exit(1)
	}
}

func printJSON(v any) error {
	var data []byte
	var err error
	if term.IsTerminal(int(os.Stdout.Fd())) {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func loadRegionSet(path string) (*region.RegionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rs := &region.RegionSet{}
	if err := json.Unmarshal(data, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func gen(opts docopt.Opts) error {
	dimension, err := opts.Int("--dimension")
	if err != nil {
		return err
	}
	count, err := opts.Int("--count")
	if err != nil {
		return err
	}
	lower, err := opts.Float64("--bounds_lower")
	if err != nil {
		lower = 0
	}
	upper, err := opts.Float64("--bounds_upper")
	if err != nil {
		upper = 100
	}
	outFile, err := opts.String("<out_file>")
	if err != nil {
		return err
	}

	intervals := make([]region.Interval, dimension)
	for i := range intervals {
		interval, err := region.NewInterval(lower, upper)
		if err != nil {
			return err
		}
		intervals[i] = interval
	}
	boundsRegion, err := region.NewRegion("", intervals)
	if err != nil {
		return err
	}

	rng := region.Randoms{}.Uniform()
	rs := region.FromRandom("", count, boundsRegion, rng)

	glog.Infof("[regionsetctl] generated %d regions in %d dimensions", count, dimension)

	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outFile, data, 0644)
}

func sweep(opts docopt.Opts) error {
	dimension, err := opts.Int("--dimension")
	if err != nil {
		return err
	}
	touching, _ := opts.Bool("--touching")
	inFile, err := opts.String("<in_file>")
	if err != nil {
		return err
	}

	rs, err := loadRegionSet(inFile)
	if err != nil {
		return err
	}

	pairs := region.RegionSweepOverlaps(rs, dimension, touching)
	glog.Infof("[regionsetctl] sweep found %d overlapping pairs", len(pairs))
	return printJSON(pairs)
}

func cycleSweep(opts docopt.Opts) error {
	touching, _ := opts.Bool("--touching")
	inFile, err := opts.String("<in_file>")
	if err != nil {
		return err
	}
	regionID, _ := opts.String("--region_id")

	rs, err := loadRegionSet(inFile)
	if err != nil {
		return err
	}

	var results []region.KWiseIntersection
	if regionID != "" {
		results, err = region.SRQEnumByRCSweep(rs, regionID, touching)
		if err != nil {
			return err
		}
	} else {
		results = region.EnumerateByRCSweep(rs, touching)
	}

	glog.Infof("[regionsetctl] cycle-sweep found %d k-wise intersections", len(results))
	return printJSON(results)
}

func runGraph(opts docopt.Opts) error {
	touching, _ := opts.Bool("--touching")
	inFile, err := opts.String("<in_file>")
	if err != nil {
		return err
	}

	rs, err := loadRegionSet(inFile)
	if err != nil {
		return err
	}

	rig := region.BuildRegionIntersectionGraph(rs, touching)
	glog.Infof("[regionsetctl] graph built: %d nodes, %d edges", rig.NodeCount(), rig.EdgeCount())
	return printJSON(rig)
}

func enumerate(opts docopt.Opts) error {
	touching, _ := opts.Bool("--touching")
	inFile, err := opts.String("<in_file>")
	if err != nil {
		return err
	}
	regionID, _ := opts.String("--region_id")

	rs, err := loadRegionSet(inFile)
	if err != nil {
		return err
	}

	rig := region.BuildRegionIntersectionGraph(rs, touching)

	var results []region.KWiseIntersection
	if regionID != "" {
		results, err = region.SRQEnumByNxGraph(rig, regionID)
		if err != nil {
			return err
		}
	} else {
		results = region.EnumerateByNxGraph(rig)
	}

	glog.Infof("[regionsetctl] enumerate found %d intersecting cliques", len(results))
	return printJSON(results)
}
