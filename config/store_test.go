package config

import (
	"errors"
	"testing"
)

func sample() SearchConfig {
	return SearchConfig{
		Name:              "pyfixes",
		Language:          "python",
		FilterDescription: "bug fixes that add tests",
		SearchKeywords:    []string{"fix bug", "regression test"},
		AIPrompt:          "must add tests",
		FileFilterRegex:   `\.py$`,
		ResultFile:        "pyfixes_results.json",
	}
}

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	if err := s.Create(sample()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Load("pyfixes")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Language != "python" || len(got.SearchKeywords) != 2 || got.FileFilterRegex != `\.py$` {
		t.Errorf("loaded config differs: %+v", got)
	}

	got.Language = "go"
	if err := s.Update(got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = s.Load("pyfixes")
	if err != nil {
		t.Fatalf("Load after update: %v", err)
	}
	if got.Language != "go" {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := s.Delete("pyfixes"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load("pyfixes"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCreateExisting(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Create(sample()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create(sample()); !errors.Is(err, ErrExists) {
		t.Errorf("got %v, want ErrExists", err)
	}
}

func TestUpdateMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	if err := s.Update(sample()); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCreateInvalid(t *testing.T) {
	s := NewStore(t.TempDir())

	cfg := sample()
	cfg.SearchKeywords = nil
	if err := s.Create(cfg); err == nil {
		t.Error("expected validation error for missing keywords")
	}

	cfg = sample()
	cfg.ResultFile = ""
	if err := s.Create(cfg); err == nil {
		t.Error("expected validation error for missing result file")
	}
}

func TestList(t *testing.T) {
	s := NewStore(t.TempDir())

	names, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty list, got %v", names)
	}

	a := sample()
	a.Name = "beta"
	if err := s.Create(a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	b := sample()
	b.Name = "alpha"
	if err := s.Create(b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	names, err = s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("got %v, want [alpha beta]", names)
	}
}
