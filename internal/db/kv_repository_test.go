package db

import (
	"context"
	"testing"
)

func TestKVRepositoryPutAndGet(t *testing.T) {
	repo := NewKVRepository(openTestSQLite(t, "cyclenote-kv.db"))
	ctx := context.Background()

	if _, found, err := repo.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}

	if err := repo.Put(ctx, "records", []byte(`{"days":{}}`)); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if err := repo.Put(ctx, "records", []byte(`{"days":{"2024-01-01":{"period":true}}}`)); err != nil {
		t.Fatalf("second Put returned error: %v", err)
	}

	value, found, err := repo.Get(ctx, "records")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !found {
		t.Fatal("expected stored key to be found")
	}
	if string(value) != `{"days":{"2024-01-01":{"period":true}}}` {
		t.Fatalf("unexpected stored value %s", value)
	}
}
