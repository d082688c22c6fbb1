package repository

import (
	"context"
	"testing"

	"github.com/aliskhannn/git-tutor/internal/storage"
)

func TestProgressRepository_MarkViewedIgnoresDuplicates(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	repo := NewProgressRepository(kv)

	ids, err := repo.Viewed(ctx)
	if err != nil || len(ids) != 0 {
		t.Fatalf("expected empty progress, got %v err=%v", ids, err)
	}

	for _, id := range []string{"git status", "git clone", "git status"} {
		if _, err = repo.MarkViewed(ctx, id); err != nil {
			t.Fatalf("mark %q: %v", id, err)
		}
	}

	added, err := repo.MarkViewed(ctx, "git clone")
	if err != nil || added {
		t.Fatalf("expected duplicate to be ignored, added=%v err=%v", added, err)
	}

	ids, err = NewProgressRepository(kv).Viewed(ctx)
	if err != nil {
		t.Fatalf("viewed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "git status" || ids[1] != "git clone" {
		t.Fatalf("expected [git status git clone], got %v", ids)
	}

	raw, _ := kv.Get(ctx, learningProgressKey)
	if raw != `["git status","git clone"]` {
		t.Fatalf("unexpected stored value %s", raw)
	}
}

func TestProgressRepository_ResetAndCorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	repo := NewProgressRepository(kv)

	_ = kv.Set(ctx, learningProgressKey, "not json")
	ids, err := repo.Viewed(ctx)
	if err != nil || len(ids) != 0 {
		t.Fatalf("expected corrupt value to read as empty, got %v err=%v", ids, err)
	}

	if _, err = repo.MarkViewed(ctx, "git log"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err = repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	ids, err = repo.Viewed(ctx)
	if err != nil || len(ids) != 0 {
		t.Fatalf("expected empty progress after reset, got %v err=%v", ids, err)
	}
}
