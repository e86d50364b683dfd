package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carbocation/heredity"
)

const family0CSV = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportThenInfer(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "family0.csv", family0CSV)
	dbPath := filepath.Join(dir, "family0.db")

	rootCmd.SetArgs([]string{"import", csvPath, dbPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"infer", csvPath, dbPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, path := range []string{csvPath, dbPath} {
		if !strings.Contains(got, "== "+path+" ==") {
			t.Errorf("Output lacks a header for %s:\n%s", path, got)
		}
	}
	if n := strings.Count(got, "    1: 0.4557\n"); n != 2 {
		t.Errorf("Got Harry's one-copy probability %d times, expected 2:\n%s", n, got)
	}
}

func TestInferAllKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "family0.csv", family0CSV),
		writeFile(t, dir, "solo.csv", "name,mother,father,trait\nSolo,,,\n"),
	}

	engine, err := heredity.New(heredity.DefaultTable())
	if err != nil {
		t.Fatal(err)
	}

	results, err := inferAll(context.Background(), engine, paths, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("Got %d results, expected 2", len(results))
	}
	if _, ok := results[0]["Harry"]; !ok {
		t.Errorf("First result should be family0, got %v", results[0].Names())
	}
	if _, ok := results[1]["Solo"]; !ok {
		t.Errorf("Second result should be solo, got %v", results[1].Names())
	}
}

func TestInferAllFails(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "family0.csv", family0CSV),
		writeFile(t, dir, "orphan.csv", "name,mother,father,trait\nKid,Mum,,\n"),
	}

	engine, err := heredity.New(heredity.DefaultTable())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := inferAll(context.Background(), engine, paths, 1); err == nil || !strings.Contains(err.Error(), "orphan.csv") {
		t.Errorf("Got %v, expected an error naming orphan.csv", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"HEREDITY_FORMAT", "HEREDITY_TABLE", "HEREDITY_MAX_PEOPLE", "HEREDITY_PARALLEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("HEREDITY_PARALLEL", "4")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}

	expected := Config{Format: "text", MaxPeople: 20, Parallel: 4}
	if cfg != expected {
		t.Errorf("Got %+v, expected %+v", cfg, expected)
	}
}

func TestLoadTable(t *testing.T) {
	table, err := loadTable("")
	if err != nil {
		t.Fatal(err)
	}
	if table != heredity.DefaultTable() {
		t.Errorf("Got %+v, expected the default table", table)
	}

	path := writeFile(t, t.TempDir(), "table.yaml", "gene: {0: 0.9, 1: 0.05, 2: 0.05}\ntrait: {0: 0.1, 1: 0.5, 2: 0.9}\nmutation: 0.05\n")
	table, err = loadTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.Mutation != 0.05 {
		t.Errorf("Got mutation %v, expected 0.05", table.Mutation)
	}
}
