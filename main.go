package main

import (
	"flag"
	"log"

	"github.com/xlab/closer"

	"islandsim/config"
	"islandsim/erosion"
	"islandsim/export"
	"islandsim/generators"
	"islandsim/terrain"
)

func generate(cfg config.Config) (*terrain.HeightMap, error) {
	gen, err := generators.NewFractalNoise(cfg.Width, cfg.Height, cfg.Seed,
		cfg.Noise.Octaves, cfg.Noise.Frequency, cfg.Noise.Persistence, cfg.Noise.FalloffShape)
	if err != nil {
		return nil, err
	}
	if err := gen.Generate(); err != nil {
		return nil, err
	}
	return gen.Heightmap(), nil
}

func main() {
	var configPath = flag.String("config", "", "path to a JSON config file (defaults used when empty)")
	var outPath = flag.String("out", "island.png", "output PNG path")
	var rawPath = flag.String("raw", "", "optional raw float32 dump path")
	var seed = flag.Int64("seed", 0, "override the config seed when non-zero")
	flag.Parse()

	var cfg = config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	heightmap, err := generate(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var state = cfg.ErosionState()
	eroder, err := erosion.NewEroder(heightmap, &state, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	// A signal abandons the run at the next droplet boundary; the partial
	// grid is discarded, nothing is written.
	closer.Bind(func() {
		eroder.Abort()
	})

	log.Printf("eroding %dx%d island, seed %d, %d droplets",
		cfg.Width, cfg.Height, cfg.Seed, state.DropletCount)
	if err := eroder.Simulate(); err != nil {
		log.Fatal(err)
	}
	log.Printf("eroded %.4f, deposited %.4f over %d droplets",
		eroder.TotalEroded(), eroder.TotalDeposited(), eroder.Iterations())

	if cfg.Sources.Count > 0 {
		sources := eroder.PlaceSources(cfg.Sources.Count, cfg.Sources.Flux, cfg.Sources.MinElevation)
		log.Printf("%d rivers", len(sources))
		if err := eroder.SimulateSources(sources, cfg.Sources.Ticks); err != nil {
			log.Fatal(err)
		}
		log.Printf("river carving complete, %d droplets total", eroder.Iterations())
	}

	if err := export.SavePNG(*outPath, heightmap); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *outPath)
	if *rawPath != "" {
		if err := export.SaveRaw(*rawPath, heightmap); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *rawPath)
	}
}
