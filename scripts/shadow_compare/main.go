package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strings"
	"time"

	"go.uber.org/zap"
)

type probe struct {
	Name string
	Path string
	// Status probes only compare status codes; liveness banners differ in wording.
	StatusOnly bool
}

type comparison struct {
	Probe          probe
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	CacheHeader    string
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func (c comparison) diff() bool {
	return c.Error != nil || !c.StatusMatch || (!c.Probe.StatusOnly && !c.BodyMatch)
}

func main() {
	var (
		goBase     string
		legacyBase string
		idsPath    string
		timeout    time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:10000", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:5000", "Legacy API base URL")
	flag.StringVar(&idsPath, "ids", "", "File with one student id per line (blank lines and # comments ignored)")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "HTTP client timeout")
	flag.Parse()

	logr, _ := zap.NewDevelopment()
	defer logr.Sync() //nolint:errcheck

	ids, err := loadIDs(idsPath, flag.Args())
	if err != nil {
		logr.Fatal("failed to load ids", zap.Error(err))
	}

	client := &http.Client{Timeout: timeout}
	var (
		results []comparison
		diffs   int
	)
	for _, p := range probes(ids) {
		res := compareProbe(client, goBase, legacyBase, p)
		if res.diff() {
			diffs++
		}
		results = append(results, res)
	}

	printReport(os.Stdout, results)
	fmt.Printf("Diffs: %d of %d probes\n", diffs, len(results))
	if diffs > 0 {
		os.Exit(1)
	}
}

// probes always covers the banner and a missing id before the student ids.
func probes(ids []string) []probe {
	out := []probe{
		{Name: "home", Path: "/", StatusOnly: true},
		{Name: "missing id", Path: "/api/student"},
		{Name: "blank id", Path: "/api/student?id=" + url.QueryEscape("   ")},
	}
	for _, id := range ids {
		out = append(out, probe{Name: "student " + id, Path: "/api/student?id=" + url.QueryEscape(id)})
	}
	return out
}

func loadIDs(path string, extra []string) ([]string, error) {
	ids := append([]string(nil), extra...)
	if path == "" {
		return ids, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	return ids, scanner.Err()
}

func compareProbe(client *http.Client, goBase, legacyBase string, p probe) comparison {
	comp := comparison{Probe: p}

	goStatus, goBody, goHeader, goDur, err := fetch(client, goBase, p.Path)
	if err != nil {
		comp.Error = fmt.Errorf("go request failed: %w", err)
		return comp
	}
	legacyStatus, legacyBody, _, legacyDur, err := fetch(client, legacyBase, p.Path)
	if err != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", err)
		return comp
	}

	comp.GoStatus = goStatus
	comp.LegacyStatus = legacyStatus
	comp.DurationGo = goDur
	comp.DurationLegacy = legacyDur
	comp.CacheHeader = goHeader.Get("X-Cache")
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(goBody, legacyBody)
	return comp
}

func fetch(client *http.Client, base, path string) (int, []byte, http.Header, time.Duration, error) {
	start := time.Now()
	resp, err := client.Get(strings.TrimRight(base, "/") + path)
	if err != nil {
		return 0, nil, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, resp.Header, time.Since(start), nil
}

// bodiesEqual compares JSON documents structurally so key order and
// whitespace do not count as differences.
func bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	return reflect.DeepEqual(aj, bj)
}

func printReport(w io.Writer, results []comparison) {
	fmt.Fprintln(w, "Lanyard Shadow Compare")
	fmt.Fprintln(w, "======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if res.diff() {
			status = "DIFF"
		}
		fmt.Fprintf(w, "[%s] %s (%s)\n", status, res.Probe.Name, res.Probe.Path)
		if res.Error != nil {
			fmt.Fprintf(w, "  Error: %v\n", res.Error)
			continue
		}
		fmt.Fprintf(w, "  Go: %d in %s", res.GoStatus, res.DurationGo)
		if res.CacheHeader != "" {
			fmt.Fprintf(w, " [X-Cache %s]", res.CacheHeader)
		}
		fmt.Fprintf(w, " | Legacy: %d in %s\n", res.LegacyStatus, res.DurationLegacy)
		fmt.Fprintf(w, "  Status match: %t | Body match: %t\n", res.StatusMatch, res.BodyMatch)
	}
}
