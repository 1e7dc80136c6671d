package requestdata

import (
	"context"
	"testing"
)

func TestActorFallsBackWhenAbsent(t *testing.T) {
	if got := Actor(context.Background(), "system"); got != "system" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestActorUsesRequestData(t *testing.T) {
	ctx := WithRequestData(context.Background(), &RequestData{ActorID: "paralegal-7"})
	if got := Actor(ctx, "system"); got != "paralegal-7" {
		t.Fatalf("expected request actor, got %q", got)
	}
}

func TestActorIgnoresEmptyActorID(t *testing.T) {
	ctx := WithRequestData(context.Background(), &RequestData{})
	if got := Actor(ctx, "operator"); got != "operator" {
		t.Fatalf("expected fallback for empty actor id, got %q", got)
	}
}
