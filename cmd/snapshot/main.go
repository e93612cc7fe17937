package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"neon-ca/internal/eca"
	"neon-ca/internal/render"
)

func main() {
	rules := flag.String("rules", "30", "comma-separated Wolfram rule numbers to render")
	width := flag.Int("w", 256, "cells per generation row")
	height := flag.Int("h", 256, "generations to render")
	steps := flag.Int("steps", -1, "generations to compute (default fills the frame)")
	scale := flag.Int("scale", 2, "pixel scale multiplier")
	palette := flag.String("palette", "neon", "color palette name")
	pattern := flag.String("pattern", "single", "initial condition: single or random")
	density := flag.Float64("density", 0.5, "active-cell probability for random seeding")
	seed := flag.Int64("seed", 42, "source seed for random seeding")
	out := flag.String("out", ".", "output directory for PNG files")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent exports")
	flag.Parse()

	ruleList, err := parseRules(*rules)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	n := *steps
	if n < 0 {
		n = *height - 1
	}
	initial := eca.SingleSeed()
	if *pattern == "random" {
		initial = eca.RandomSeed(*density, *seed)
	}
	pal := render.ByName(*palette)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rule := range jobs {
				path, err := export(rule, *width, *height, n, initial, pal, *scale, *out)
				if err != nil {
					log.Printf("rule %d: %v", rule, err)
					continue
				}
				fmt.Println(path)
			}
		}()
	}
	for _, r := range ruleList {
		jobs <- r
	}
	close(jobs)
	wg.Wait()
}

func parseRules(s string) ([]int, error) {
	var rules []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad rule %q: %w", part, err)
		}
		rules = append(rules, r)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules given")
	}
	return rules, nil
}

// export runs one automaton to completion and writes its history as a PNG.
func export(rule, w, h, steps int, seed eca.Seed, pal render.Palette, scale int, dir string) (string, error) {
	e := eca.New(rule, w, h)
	e.SetSeed(seed)
	e.Generate(steps)

	img := renderImage(e.Snapshot(), e.Size().W, e.Size().H, pal, scale)
	path := filepath.Join(dir, fmt.Sprintf("rule-%03d.png", e.Rule()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}

// renderImage expands the cell buffer into an NRGBA image at integer scale.
func renderImage(cells []uint8, w, h int, pal render.Palette, scale int) *image.NRGBA {
	buf := make([]byte, 4*w*h)
	render.FillBinaryRGBA(buf, cells, pal)
	base := &image.NRGBA{Pix: buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	if scale <= 1 {
		return base
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		srcRow := base.Pix[(y/scale)*base.Stride : (y/scale)*base.Stride+base.Stride]
		dstRow := scaled.Pix[y*scaled.Stride : (y+1)*scaled.Stride]
		for x := 0; x < w*scale; x++ {
			copy(dstRow[x*4:x*4+4], srcRow[(x/scale)*4:(x/scale)*4+4])
		}
	}
	return scaled
}
