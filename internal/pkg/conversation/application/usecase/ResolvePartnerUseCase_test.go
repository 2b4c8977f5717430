package usecase

import (
	"context"
	"errors"
	"testing"

	conversation "ruralconnect/internal/pkg/conversation/domain"
	identity "ruralconnect/internal/pkg/identity/domain"
)

func TestResolvePartnerPrefersProfile(t *testing.T) {
	_, _, _, resolver := newTestWorld()

	got, err := resolver.Execute(context.Background(), conversation.PartnerRef{Kind: conversation.PartnerAny, ID: "prof-1"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Account.ID != "acc-worker" {
		t.Errorf("account = %q, want acc-worker", got.Account.ID)
	}
	if got.ProfileID != "prof-1" {
		t.Errorf("profileID = %q, want prof-1", got.ProfileID)
	}
}

func TestResolvePartnerFallsBackToAccount(t *testing.T) {
	_, _, _, resolver := newTestWorld()

	got, err := resolver.Execute(context.Background(), conversation.PartnerRef{Kind: conversation.PartnerAny, ID: "acc-employer"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Account.ID != "acc-employer" {
		t.Errorf("account = %q, want acc-employer", got.Account.ID)
	}
	if got.ProfileID != "" {
		t.Errorf("profileID = %q, want empty for direct account match", got.ProfileID)
	}
}

func TestResolvePartnerExplicitKinds(t *testing.T) {
	_, _, _, resolver := newTestWorld()
	ctx := context.Background()

	// An account id tagged as a profile reference must not fall through to
	// the account lookup.
	if _, err := resolver.Execute(ctx, conversation.PartnerRef{Kind: conversation.PartnerProfile, ID: "acc-employer"}); !errors.Is(err, conversation.ErrPartnerNotFound) {
		t.Errorf("profile-tagged account id: err = %v, want ErrPartnerNotFound", err)
	}

	// And a profile id tagged as an account reference must not match.
	if _, err := resolver.Execute(ctx, conversation.PartnerRef{Kind: conversation.PartnerAccount, ID: "prof-1"}); !errors.Is(err, conversation.ErrPartnerNotFound) {
		t.Errorf("account-tagged profile id: err = %v, want ErrPartnerNotFound", err)
	}
}

func TestResolvePartnerUnknownID(t *testing.T) {
	_, _, _, resolver := newTestWorld()

	for _, id := range []string{"", "nope"} {
		if _, err := resolver.Execute(context.Background(), conversation.PartnerRef{ID: id}); !errors.Is(err, conversation.ErrPartnerNotFound) {
			t.Errorf("id %q: err = %v, want ErrPartnerNotFound", id, err)
		}
	}
}

func TestResolvePartnerOrphanedProfile(t *testing.T) {
	_, accounts, profiles, resolver := newTestWorld()
	profiles.profiles["prof-orphan"] = identity.WorkerListing{
		WorkerProfile: identity.WorkerProfile{ID: "prof-orphan", AccountID: "acc-gone", Skill: "Tailor"},
	}
	delete(accounts.accounts, "acc-gone")

	if _, err := resolver.Execute(context.Background(), conversation.PartnerRef{Kind: conversation.PartnerProfile, ID: "prof-orphan"}); !errors.Is(err, conversation.ErrPartnerNotFound) {
		t.Errorf("orphaned profile: err = %v, want ErrPartnerNotFound", err)
	}
}
