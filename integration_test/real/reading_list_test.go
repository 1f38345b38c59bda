//go:build integration
// +build integration

package client_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mycelian/readlater/client"
)

// TestReadingListE2E exercises the live flow against the hosted service:
//  1. add a uniquely tagged URL
//  2. find it again through a tag filter
//  3. archive and delete it in one batch
//
// Run with: go test -tags=integration ./integration_test/real -v
func TestReadingListE2E(t *testing.T) {
	c, err := client.NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tag := "it-" + uuid.NewString()[:8]
	added, err := c.Add(ctx, fmt.Sprintf("https://example.com/?it=%s", tag), client.AddTags(tag))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	id := added.Item.ItemID

	resp, err := c.Get(ctx, client.NewFilter().Tagged(tag).All().Complete())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	found := false
	for _, it := range resp.Items {
		if it.ItemID == id {
			found = true
		}
	}
	if !found {
		t.Fatalf("item %d not listed under tag %s", id, tag)
	}

	results, err := c.Send(ctx, client.Archive(id), client.Delete(id))
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	for i, ok := range results {
		if !ok {
			t.Fatalf("action %d rejected", i)
		}
	}
}
